// ABOUTME: Tests for model enums and helpers
// ABOUTME: Verifies validators and the completed-task counter
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("maybe"))
	assert.False(t, ValidStatus(""))

	for _, s := range Sources() {
		assert.True(t, ValidSource(s))
	}
	assert.False(t, ValidSource("fax"))

	assert.True(t, ValidTaskType(TaskCall))
	assert.True(t, ValidTaskType(TaskTodo))
	assert.False(t, ValidTaskType("reminder"))
}

func TestCompletedTaskCount(t *testing.T) {
	lead := Lead{
		Tasks: []LeadTask{
			{Completed: true},
			{Completed: false},
			{Completed: true},
		},
	}
	assert.Equal(t, 2, lead.CompletedTaskCount())

	empty := Lead{}
	assert.Zero(t, empty.CompletedTaskCount())
}
