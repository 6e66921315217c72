package subjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	assert.Equal(t, GenderFemale, ParseGender("F"))
	assert.Equal(t, GenderFemale, ParseGender(" femme "))
	assert.Equal(t, GenderMale, ParseGender("M"))
	assert.Equal(t, GenderMale, ParseGender("Homme"))
	assert.Equal(t, GenderUnknown, ParseGender(""))
	assert.Equal(t, GenderUnknown, ParseGender("x"))
}
