package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/naijafake/pkg/sanitizer"
)

func TestStripDiacritics(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Adébáyọ̀":  "Adebayo",
		"Ọlátúnjí": "Olatunji",
		"Chinedu":  "Chinedu",
		"":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizer.StripDiacritics(in), in)
	}
}

func TestEmailPart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "adebayo", sanitizer.EmailPart("Adébáyọ̀"))
	assert.Equal(t, "okonkwo", sanitizer.EmailPart("O'Konkwo"))
	assert.Equal(t, "katsinaala", sanitizer.EmailPart("Katsina-Ala"))
	assert.Equal(t, "", sanitizer.EmailPart("!!!"))
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Chukwu Emeka", sanitizer.TitleCase("  chukwu   EMEKA "))
	assert.Equal(t, "Ade", sanitizer.TitleCase("ade"))
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ade Bola", sanitizer.NormalizeWhitespace("\tAde \n  Bola  "))
}

func TestKeepDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2348031234567", sanitizer.KeepDigits("+234 (803) 123-4567"))
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		format sanitizer.PhoneFormat
		want   string
	}{
		{"08031234567", sanitizer.PhoneLocal, "08031234567"},
		{"08031234567", sanitizer.PhoneInternational, "+2348031234567"},
		{"08031234567", sanitizer.PhoneSpaced, "0803 123 4567"},
		{"+2348031234567", sanitizer.PhoneLocal, "08031234567"},
		{"+234 803 123 4567", sanitizer.PhoneSpaced, "0803 123 4567"},
		{"12345", sanitizer.PhoneInternational, "12345"},
		{"08031234567", sanitizer.PhoneFormat("unknown"), "08031234567"},
	}
	for _, tt := range tests {
		t.Run(tt.in+"/"+string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.FormatPhone(tt.in, tt.format))
		})
	}
}
