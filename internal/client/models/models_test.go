package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromStock(t *testing.T) {
	tests := []struct {
		stock int
		want  CourseStatus
	}{
		{-3, StatusFull},
		{0, StatusFull},
		{1, StatusLimited},
		{10, StatusLimited},
		{50, StatusLimited},
		{51, StatusActive},
		{60, StatusActive},
		{1000, StatusActive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromStock(tt.stock), "stock=%d", tt.stock)
	}
}

func TestStatusFromStock_AllRanges(t *testing.T) {
	for s := 0; s <= 200; s++ {
		got := StatusFromStock(s)
		switch {
		case s == 0:
			require.Equal(t, StatusFull, got)
		case s <= 50:
			require.Equal(t, StatusLimited, got)
		default:
			require.Equal(t, StatusActive, got)
		}
	}
}

func TestFavoriteSet_ToggleTwiceRestores(t *testing.T) {
	s := NewFavoriteSet(1, 2)

	assert.True(t, s.Toggle(42))
	assert.False(t, s.Toggle(42))
	assert.False(t, s.Has(42))
	assert.Equal(t, []int64{1, 2}, s.IDs())

	assert.False(t, s.Toggle(1))
	assert.True(t, s.Toggle(1))
	assert.True(t, s.Has(1))
	assert.Equal(t, 2, s.Len())
}

func TestFavoriteSet_KeepsInsertionOrderAndDedupes(t *testing.T) {
	s := NewFavoriteSet(5, 3, 5, 9, 3)
	assert.Equal(t, []int64{5, 3, 9}, s.IDs())

	s.Toggle(3)
	s.Toggle(3)
	assert.Equal(t, []int64{5, 9, 3}, s.IDs())
}

func TestFavoriteSet_ZeroValueAndNil(t *testing.T) {
	var s FavoriteSet
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Toggle(7))
	assert.True(t, s.Has(7))

	var nilSet *FavoriteSet
	assert.False(t, nilSet.Has(1))
	assert.Equal(t, 0, nilSet.Len())
	assert.Equal(t, []int64{}, nilSet.IDs())
}

func TestFavoriteSet_JSON(t *testing.T) {
	s := NewFavoriteSet(42)
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[42]`, string(b))

	var empty FavoriteSet
	b, err = json.Marshal(&empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	var got FavoriteSet
	require.NoError(t, json.Unmarshal([]byte(`[3,1,3]`), &got))
	assert.Equal(t, []int64{3, 1}, got.IDs())

	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), &got))
}

func TestFavoriteSet_CloneIsIndependent(t *testing.T) {
	s := NewFavoriteSet(1)
	c := s.Clone()
	c.Toggle(2)
	assert.False(t, s.Has(2))
	assert.True(t, c.Has(2))
}

func TestDecodeSettings_MergesOverDefaults(t *testing.T) {
	blob := []byte(`{"notifications":{"pushNotifications":false},"preferences":{"theme":"dark"}}`)

	s, err := DecodeSettings(blob)
	require.NoError(t, err)

	want := DefaultSettings()
	want.Notifications.PushNotifications = false
	want.Preferences.Theme = "dark"
	assert.Equal(t, want, s)
}

func TestDecodeSettings_CorruptFallsBackToDefaults(t *testing.T) {
	s, err := DecodeSettings([]byte(`{not json`))
	require.Error(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettings_Toggle(t *testing.T) {
	s := DefaultSettings()

	got, err := s.Toggle("privacy", "showEmail")
	require.NoError(t, err)
	assert.True(t, got.Privacy.ShowEmail)
	assert.False(t, s.Privacy.ShowEmail, "receiver must not change")

	_, err = s.Toggle("privacy", "nope")
	require.ErrorIs(t, err, ErrInvalidSetting)

	_, err = s.Toggle("preferences", "theme")
	require.ErrorIs(t, err, ErrInvalidSetting)
}

func TestSettings_SetOption(t *testing.T) {
	s := DefaultSettings()

	got, err := s.SetOption("preferences", "downloadQuality", "low")
	require.NoError(t, err)
	assert.Equal(t, "low", got.Preferences.DownloadQuality)

	_, err = s.SetOption("preferences", "downloadQuality", "ultra")
	require.ErrorIs(t, err, ErrInvalidSetting)

	_, err = s.SetOption("bogus", "x", "y")
	require.ErrorIs(t, err, ErrInvalidSetting)
}

func TestSettingKeys_CoversBothKinds(t *testing.T) {
	keys := SettingKeys()
	assert.Contains(t, keys, "app.dataUsage")
	assert.Contains(t, keys, "notifications.soundEnabled")
	assert.IsIncreasing(t, keys)

	vals, ok := OptionValues("app", "dataUsage")
	require.True(t, ok)
	assert.Equal(t, []string{"low", "moderate", "high"}, vals)
}

func TestUser_DisplayNameAndInitials(t *testing.T) {
	u := User{Username: "emilys", FirstName: "Emily", LastName: "Johnson"}
	assert.Equal(t, "Emily Johnson", u.DisplayName())
	assert.Equal(t, "EJ", u.Initials())

	u = User{Username: "solo"}
	assert.Equal(t, "solo", u.DisplayName())
	assert.Equal(t, "S", u.Initials())
}

func TestProfileUpdate_Apply(t *testing.T) {
	first, bio := " Em ", "hi"
	u := User{ID: 1, Username: "emilys", FirstName: "Emily", Token: "t"}

	got := ProfileUpdate{FirstName: &first, Bio: &bio}.Apply(u)
	assert.Equal(t, "Em", got.FirstName)
	assert.Equal(t, "hi", got.Bio)
	assert.Equal(t, "t", got.Token)
	assert.Equal(t, "Emily", u.FirstName)
}

func TestSession_Derived(t *testing.T) {
	assert.False(t, Session{Status: SessionAuthenticated}.IsAuthenticated())
	assert.True(t, Session{Status: SessionAuthenticated, User: &User{}}.IsAuthenticated())
	assert.True(t, Session{Status: SessionChecking}.IsLoading())
	assert.False(t, Session{Status: SessionUnknown}.IsLoading())
}

func TestSettings_Value(t *testing.T) {
	s := DefaultSettings()

	v, ok := s.Value("app", "dataUsage")
	require.True(t, ok)
	assert.Equal(t, "moderate", v)

	v, ok = s.Value("privacy", "showPhone")
	require.True(t, ok)
	assert.Equal(t, "false", v)

	_, ok = s.Value("app", "missing")
	assert.False(t, ok)

	for _, k := range SettingKeys() {
		ns, key, _ := strings.Cut(k, ".")
		_, ok := s.Value(ns, key)
		assert.True(t, ok, k)
	}
}
