package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want Date
	}{
		{`"2024-03-15"`, NewDate(2024, time.March, 15)},
		{`"2024-03-15T00:00:00Z"`, NewDate(2024, time.March, 15)},
		{`null`, Date{}},
		{`""`, Date{}},
	}
	for _, tc := range cases {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(tc.in), &d), tc.in)
		assert.True(t, tc.want.Equal(d.Time), "%s: got %v", tc.in, d)
	}

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A Date `json:"a"`
		B Date `json:"b"`
	}{A: NewDate(2025, time.January, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2025-01-02","b":null}`, string(b))
}

func TestDate_Formatos(t *testing.T) {
	d := NewDate(2025, time.December, 31)
	assert.Equal(t, "31/12/2025", d.String())
	assert.Equal(t, "2025-12-31", d.Input())
	assert.Equal(t, "—", Date{}.String())
	assert.Equal(t, "", Date{}.Input())
}

func TestHasRole_SinDistinguirMayusculas(t *testing.T) {
	roles := []string{"admin", "OPERARIO"}
	assert.True(t, HasRole(roles, RoleAdmin))
	assert.True(t, HasRole(roles, "operario"))
	assert.False(t, HasRole(roles, RoleSupervisor))
	assert.False(t, HasRole(nil, RoleAdmin))
}
