package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMerge_OnlyPatchedFieldsChange(t *testing.T) {
	original := User{
		ID:         4,
		FirstName:  "Asha",
		LastName:   "Patel",
		Email:      "asha@example.com",
		Phone:      "555-0100",
		AvatarURL:  "https://cdn.example.com/asha.png",
		Role:       "user",
		Department: "Facilities",
		Division:   "North",
	}

	phone := "555-0199"
	merged := original.Merge(UserPatch{Phone: &phone})

	assert.Equal(t, "555-0199", merged.Phone)

	// every other field stays byte-identical
	merged.Phone = original.Phone
	assert.Equal(t, original, merged)
}

func TestUserMerge_EmptyPatchIsIdentity(t *testing.T) {
	original := User{ID: 1, FirstName: "Bo", Email: "bo@example.com"}
	assert.Equal(t, original, original.Merge(UserPatch{}))
}

func TestUserMerge_ExplicitEmptyStringOverwrites(t *testing.T) {
	original := User{FirstName: "Bo", Phone: "555-0100"}
	empty := ""
	merged := original.Merge(UserPatch{Phone: &empty})
	assert.Empty(t, merged.Phone)
	assert.Equal(t, "Bo", merged.FirstName)
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "both names", user: User{FirstName: "Asha", LastName: "Patel"}, want: "Asha Patel"},
		{name: "first only", user: User{FirstName: "Asha"}, want: "Asha"},
		{name: "last only", user: User{LastName: "Patel"}, want: "Patel"},
		{name: "neither", user: User{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.FullName())
		})
	}
}

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.True(t, Session{Token: "tok"}.Authenticated())
}
