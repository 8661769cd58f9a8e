package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserDirectory_Lookup(t *testing.T) {
	d := UserDirectory{"U1": "Alice"}

	name, ok := d.Lookup("U1").Get()
	assert.True(t, ok)
	assert.Equal(t, "Alice", name)

	assert.True(t, d.Lookup("U404").IsAbsent())
}

func TestResponse_Message(t *testing.T) {
	r := NewResponse(200, "Success!")

	assert.Equal(t, 200, r.StatusCode)
	assert.Equal(t, `"Success!"`, r.Body)
	assert.Equal(t, "Success!", r.Message())
}

func TestReport_Total(t *testing.T) {
	r := &Report{Entries: []RankingEntry{
		{Rank: 1, Name: "Alice", Count: 3},
		{Rank: 2, Name: "Bob", Count: 1},
	}}

	assert.True(t, r.HasAttendance())
	assert.Equal(t, 4, r.Total())

	var empty *Report
	assert.False(t, empty.HasAttendance())
}
