// SPDX-License-Identifier: MIT

package vulnerability_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epimob/vulnerability"
)

func TestDisease_StringAndParse(t *testing.T) {
	assert.Equal(t, "ABD", vulnerability.ABD.String())
	assert.Equal(t, "VBD", vulnerability.VBD.String())
	assert.Equal(t, "Disease(9)", vulnerability.Disease(9).String())

	d, err := vulnerability.ParseDisease(" vbd ")
	require.NoError(t, err)
	assert.Equal(t, vulnerability.VBD, d)

	_, err = vulnerability.ParseDisease("flu")
	assert.ErrorIs(t, err, vulnerability.ErrUnknownDisease)

	assert.Equal(t, []vulnerability.Disease{vulnerability.ABD, vulnerability.VBD}, vulnerability.Diseases())
}

func TestDisease_AsJSONKey(t *testing.T) {
	in := map[vulnerability.Disease][]float64{
		vulnerability.ABD: {0.5},
		vulnerability.VBD: {0.25},
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ABD":[0.5],"VBD":[0.25]}`, string(b))

	var out map[vulnerability.Disease][]float64
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}
