package domain

import "time"

// DefaultLanguage is the UI language of freshly created preferences.
const DefaultLanguage = "es"

// GameProfile is the player's in-game identity.
type GameProfile struct {
	Tier              string   `json:"tier,omitempty" bson:"tier,omitempty"`
	Division          string   `json:"division,omitempty" bson:"division,omitempty"`
	RiotID            string   `json:"riot_id,omitempty" bson:"riot_id,omitempty"`
	MainRole          string   `json:"main_role,omitempty" bson:"main_role,omitempty"`
	FavoriteChampions []string `json:"favorite_champions,omitempty" bson:"favorite_champions,omitempty"`
}

// FullRank joins tier and division ("GOLD II"), or returns the tier alone.
func (g GameProfile) FullRank() string {
	if g.Tier != "" && g.Division != "" {
		return g.Tier + " " + g.Division
	}
	return g.Tier
}

// UserPreferences holds per-account game and application settings. It is
// keyed by the owning user's ID, so each account has at most one document.
type UserPreferences struct {
	UserID string `json:"user_id" bson:"_id"`

	GameProfile `bson:",inline"`

	DarkMode           bool   `json:"dark_mode" bson:"dark_mode"`
	Language           string `json:"language" bson:"language"`
	Notifications      bool   `json:"notifications" bson:"notifications"`
	EmailNotifications bool   `json:"email_notifications" bson:"email_notifications"`

	PreferredGameMode string   `json:"preferred_game_mode,omitempty" bson:"preferred_game_mode,omitempty"`
	AvailableHours    []string `json:"available_hours,omitempty" bson:"available_hours,omitempty"`
	Timezone          string   `json:"timezone,omitempty" bson:"timezone,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewUserPreferences returns the default settings for userID.
func NewUserPreferences(userID string, now time.Time) *UserPreferences {
	return &UserPreferences{
		UserID:             userID,
		DarkMode:           true,
		Language:           DefaultLanguage,
		Notifications:      true,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched.
type ProfileUpdate struct {
	Username          *string
	Tier              *string
	Division          *string
	RiotID            *string
	MainRole          *string
	FavoriteChampions []string
}

// ApplyTo copies the set game fields onto g.
func (u ProfileUpdate) ApplyTo(g *GameProfile) {
	if u.Tier != nil {
		g.Tier = *u.Tier
	}
	if u.Division != nil {
		g.Division = *u.Division
	}
	if u.RiotID != nil {
		g.RiotID = *u.RiotID
	}
	if u.MainRole != nil {
		g.MainRole = *u.MainRole
	}
	if u.FavoriteChampions != nil {
		g.FavoriteChampions = u.FavoriteChampions
	}
}

// Profile is the caller's account together with their preferences.
type Profile struct {
	User        UserSummary      `json:"user"`
	Rank        string           `json:"rank,omitempty"`
	Preferences *UserPreferences `json:"preferences"`
}
