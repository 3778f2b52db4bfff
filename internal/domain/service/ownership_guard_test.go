package service

import (
	"testing"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipGuard_CanMutate(t *testing.T) {
	guard := NewOwnershipGuard()
	owner := entity.AccountID(uuid.New())
	other := entity.AccountID(uuid.New())
	job := &entity.JobPosting{ID: entity.JobID(uuid.New()), PostedBy: owner}

	tests := []struct {
		name   string
		caller entity.AccountID
		job    *entity.JobPosting
		want   bool
	}{
		{name: "owner", caller: owner, job: job, want: true},
		{name: "same id parsed from text", caller: mustParse(t, owner.String()), job: job, want: true},
		{name: "other account", caller: other, job: job, want: false},
		{name: "zero caller", caller: entity.NilAccountID, job: &entity.JobPosting{}, want: false},
		{name: "nil job", caller: owner, job: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.CanMutate(tt.caller, tt.job))
		})
	}
}

func TestOwnershipGuard_ReadScope(t *testing.T) {
	guard := NewOwnershipGuard()
	caller := entity.AccountID(uuid.New())
	intruder := entity.AccountID(uuid.New())

	filter := guard.ReadScope(caller, repository.JobFilter{PostedBy: &intruder, Limit: 10})

	require.NotNil(t, filter.PostedBy)
	assert.Equal(t, caller, *filter.PostedBy)
	assert.Equal(t, 10, filter.Limit)
}

func mustParse(t *testing.T, s string) entity.AccountID {
	t.Helper()

	id, err := entity.ParseAccountID(s)
	require.NoError(t, err)

	return id
}
