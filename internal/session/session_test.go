package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfoliomaker/internal/models"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager(time.Hour)

	profile := models.ProfileRecord{}
	profile.PersonalInfo.FullName = "Jane Doe"
	state := m.Create("jane", profile)

	require.NotEmpty(t, state.SessionID)
	assert.Equal(t, "jane", state.Username)

	got, err := m.Get(state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Profile.PersonalInfo.FullName)

	_, err = m.Get("unknown-id")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDistinctSessionIDs(t *testing.T) {
	m := NewManager(time.Hour)
	a := m.Create("jane", models.ProfileRecord{})
	b := m.Create("jane", models.ProfileRecord{})
	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.Equal(t, 2, m.Count())
}

func TestDelete(t *testing.T) {
	m := NewManager(time.Hour)
	state := m.Create("jane", models.ProfileRecord{})

	m.Delete(state.SessionID)
	_, err := m.Get(state.SessionID)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, 0, m.Count())
}

func TestExpiry(t *testing.T) {
	m := NewManager(time.Minute)
	current := time.Unix(1700000000, 0)
	m.now = func() time.Time { return current }

	state := m.Create("jane", models.ProfileRecord{})

	_, err := m.Get(state.SessionID)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = m.Get(state.SessionID)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestPutRefreshesExpiry(t *testing.T) {
	m := NewManager(time.Minute)
	current := time.Unix(1700000000, 0)
	m.now = func() time.Time { return current }

	state := m.Create("jane", models.ProfileRecord{})

	current = current.Add(45 * time.Second)
	m.Put(state)

	current = current.Add(45 * time.Second)
	_, err := m.Get(state.SessionID)
	assert.NoError(t, err)
}

func TestSweepDropsExpired(t *testing.T) {
	m := NewManager(time.Minute)
	current := time.Unix(1700000000, 0)
	m.now = func() time.Time { return current }

	m.Create("jane", models.ProfileRecord{})
	m.Create("john", models.ProfileRecord{})
	current = current.Add(2 * time.Minute)
	kept := m.Create("fresh", models.ProfileRecord{})

	m.sweep()

	assert.Equal(t, 1, m.Count())
	_, err := m.Get(kept.SessionID)
	assert.NoError(t, err)
}

func TestStateSnapshotsAreImmutable(t *testing.T) {
	base := State{
		Username:  "jane",
		SessionID: "s1",
		Artifacts: map[string]string{},
	}

	profile := models.ProfileRecord{}
	profile.PersonalInfo.FullName = "Jane Doe"
	withProfile := base.WithProfile(profile, models.LinksData{})
	assert.Empty(t, base.Profile.PersonalInfo.FullName)
	assert.Equal(t, "Jane Doe", withProfile.Profile.PersonalInfo.FullName)

	withResume := withProfile.WithArtifact(ArtifactResume, "# Jane Doe")
	assert.Empty(t, withProfile.Artifacts[ArtifactResume])
	assert.Equal(t, "# Jane Doe", withResume.Artifacts[ArtifactResume])

	// Artifacts survive a profile update.
	updated := withResume.WithProfile(profile, models.LinksData{})
	assert.Equal(t, "# Jane Doe", updated.Artifacts[ArtifactResume])
}

func TestManagerGetReturnsLatestSnapshot(t *testing.T) {
	m := NewManager(time.Hour)
	state := m.Create("jane", models.ProfileRecord{})

	m.Put(state.WithArtifact(ArtifactCoverLetter, "Dear Hiring Manager,"))

	got, err := m.Get(state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager,", got.Artifacts[ArtifactCoverLetter])
	assert.Empty(t, state.Artifacts[ArtifactCoverLetter])
}
