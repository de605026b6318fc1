package punch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		label string
		want  Kind
	}{
		{"entry", KindEntry},
		{"Entrada", KindEntry},
		{"  clock_in  ", KindEntry},
		{"saida", KindExit},
		{"saída", KindExit},
		{"OUT", KindExit},
		{"break_start", KindBreakStart},
		{"intervalo início", KindBreakStart},
		{"almoço-início", KindBreakStart},
		{"pausa fim", KindBreakEnd},
		{"almoço fim", KindBreakEnd},
		{"coffee", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKind(tt.label), "label %q", tt.label)
	}
}
