package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusStyleReturnsOK(t *testing.T) {
	s := StatusStyle("OK")
	rendered := s.Render("test")
	assert.Contains(t, rendered, "test")
}

func TestStatusStyleReturnsTimeout(t *testing.T) {
	s := StatusStyle("TIMEOUT")
	rendered := s.Render("test")
	assert.Contains(t, rendered, "test")
}

func TestStatusStyleReturnsFail(t *testing.T) {
	s := StatusStyle("FAIL")
	rendered := s.Render("test")
	assert.Contains(t, rendered, "test")
}

func TestStatusStyleReturnsDefaultForUnknown(t *testing.T) {
	s := StatusStyle("UNKNOWN")
	rendered := s.Render("test")
	assert.Contains(t, rendered, "test")
}

func TestStylesRender(t *testing.T) {
	tests := []struct {
		name  string
		style func(...string) string
	}{
		{"TitleStyle", TitleStyle.Render},
		{"HeaderStyle", HeaderStyle.Render},
		{"BorderStyle", BorderStyle.Render},
		{"SelectedStyle", SelectedStyle.Render},
		{"CursorStyle", CursorStyle.Render},
		{"HelpStyle", HelpStyle.Render},
		{"ErrorStyle", ErrorStyle.Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.style("hello")
			assert.Contains(t, result, "hello")
		})
	}
}
