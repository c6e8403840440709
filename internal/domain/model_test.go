package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatetime_JSON(t *testing.T) {
	testTable := []struct {
		name   string
		value  Datetime
		expect string
	}{
		{
			name:   "naive stays without zone",
			value:  Datetime{Time: time.Date(2020, 1, 5, 0, 20, 30, 0, time.UTC), Naive: true},
			expect: `"2020-01-05T00:20:30"`,
		},
		{
			name:   "naive keeps microseconds",
			value:  Datetime{Time: time.Date(2020, 1, 5, 0, 20, 30, 123000000, time.UTC), Naive: true},
			expect: `"2020-01-05T00:20:30.123"`,
		},
		{
			name:   "aware utc",
			value:  Datetime{Time: time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)},
			expect: `"2021-03-04T05:06:07Z"`,
		},
		{
			name:   "aware offset",
			value:  Datetime{Time: time.Date(2021, 3, 4, 5, 6, 7, 0, time.FixedZone("", 3600))},
			expect: `"2021-03-04T05:06:07+01:00"`,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			out, err := json.Marshal(testCase.value)
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, string(out))

			var back Datetime
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, testCase.value.Naive, back.Naive)
			assert.True(t, testCase.value.Time.Equal(back.Time), "got %v", back.Time)
		})
	}
}

func TestDatetime_UnmarshalRejectsGarbage(t *testing.T) {
	var d Datetime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12`), &d))
}

func TestParseDegreeType(t *testing.T) {
	d, ok := ParseDegreeType("expert")
	assert.True(t, ok)
	assert.Equal(t, DegreeExpert, d)

	_, ok = ParseDegreeType("Expert")
	assert.False(t, ok)
}

func TestUser_Account(t *testing.T) {
	u := User{ID: 2, Role: "investor", Name: "Anna", Degree: []Degree{}}

	out, err := json.Marshal(u.Account())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"role":"investor","name":"Anna"}`, string(out))
}
