package pets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPetRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  AddPetRequest
		want error
	}{
		{"valid", AddPetRequest{Name: "Rex", Breed: "Lab", AgeYears: 4}, nil},
		{"missing name", AddPetRequest{Breed: "Lab", AgeYears: 4}, ErrMissingName},
		{"whitespace name", AddPetRequest{Name: "   ", Breed: "Lab", AgeYears: 4}, ErrMissingName},
		{"missing breed", AddPetRequest{Name: "Rex", AgeYears: 4}, ErrMissingBreed},
		{"missing age", AddPetRequest{Name: "Rex", Breed: "Lab"}, ErrMissingAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestInMemoryRepository_SeedsDemoPets(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Buddy", list[0].Name)
}

func TestInMemoryRepository_AddAppendsAndIsRetrievable(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	before, err := repo.List(context.Background())
	require.NoError(t, err)

	pet, err := repo.Add(context.Background(), &AddPetRequest{Name: "Rex", Breed: "Lab", AgeYears: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, pet.ID)
	assert.Equal(t, defaultIcon, pet.DisplayIcon)

	after, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, pet.ID, after[len(after)-1].ID)

	got, err := repo.GetByID(context.Background(), pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)
}

func TestInMemoryRepository_AddInvalidLeavesListUnchanged(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	before, err := repo.List(context.Background())
	require.NoError(t, err)

	_, err = repo.Add(context.Background(), &AddPetRequest{Breed: "Lab", AgeYears: 4})
	assert.ErrorIs(t, err, ErrMissingName)

	after, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestInMemoryRepository_GetByIDUnknown(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	_, err := repo.GetByID(context.Background(), "pet-nope")
	assert.ErrorIs(t, err, ErrPetNotFound)
}
