package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Hands int    `json:"hands"`
	Name  string `json:"name"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"hands":500,"name":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, payload{Hands: 500, Name: "x"}, got)

	_, err = Decode[payload](strings.NewReader(``))
	assert.EqualError(t, err, "empty request body")

	_, err = Decode[payload](strings.NewReader(`{"hands":"many"}`))
	assert.Error(t, err)

	_, err = Decode[payload](strings.NewReader(`{"colour":"red"}`))
	assert.Error(t, err)
}
