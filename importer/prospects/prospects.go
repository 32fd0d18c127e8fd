package prospects

import (
	"context"
	"draftroom/pkg/database/models"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	slugStrip       = regexp.MustCompile(`[^\p{L}\p{N}_\s'-]`)
	schoolSlugStrip = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	repeatedDashes  = regexp.MustCompile(`-+`)
)

// Schools whose logo slug differs from their name.
var schoolReplacements = map[string]string{
	"miami (fl)": "miami-florida",
	"texas a&m":  "texas-am",
	"ole miss":   "mississippi",
	"usc":        "southern-california",
	"ucf":        "central-florida",
	"byu":        "brigham-young",
	"lsu":        "louisiana-state",
	"smu":        "southern-methodist",
	"tcu":        "texas-christian",
	"pitt":       "pittsburgh",
}

// Prospect is one entry of the prospect export.
type Prospect struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	TeamName string `json:"team_name"`
	Height   int    `json:"height"`
	Weight   int    `json:"weight"`
}

// File is the prospect export, ordered by rank.
type File struct {
	Prospects []Prospect `json:"prospects"`
}

// Parse reads the prospect export.
func Parse(r io.Reader) (*File, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("couldn't decode the prospects: %w", err)
	}

	return &file, nil
}

// Slug builds the URL slug of a player name.
func Slug(name string) string {
	slug := strings.ToLower(name)
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.ReplaceAll(slug, "'", "")
}

// SchoolSlug builds the logo slug of a school.
func SchoolSlug(school string) string {
	slug := strings.ToLower(school)
	if replacement, ok := schoolReplacements[slug]; ok {
		slug = replacement
	}

	slug = schoolSlugStrip.ReplaceAllString(slug, "")
	slug = strings.ReplaceAll(slug, " ", "-")
	return repeatedDashes.ReplaceAllString(slug, "-")
}

// Height formats a height in inches as feet-inches, nil when unknown.
func Height(inches int) *string {
	if inches <= 0 {
		return nil
	}

	height := strconv.Itoa(inches/12) + "-" + strconv.Itoa(inches%12)
	return &height
}

// LogoFinder resolves the logo of a school.
type LogoFinder interface {
	Find(ctx context.Context, school string) *string
}

// ToPlayers converts the export to players ranked by position in the file.
// Logos are looked up only when a finder is given.
func ToPlayers(ctx context.Context, file *File, logos LogoFinder) ([]*models.Player, error) {
	players := make([]*models.Player, 0, len(file.Prospects))
	seen := make(map[string]int, len(file.Prospects))

	for i, prospect := range file.Prospects {
		name := strings.TrimSpace(prospect.Name)
		slug := Slug(name)
		if slug == "" {
			return nil, fmt.Errorf("prospect %d has no usable name", i+1)
		}
		if prev, ok := seen[slug]; ok {
			return nil, fmt.Errorf("prospects %d and %d share the slug %q", prev, i+1, slug)
		}
		seen[slug] = i + 1

		player := &models.Player{
			Name:     name,
			Slug:     slug,
			Position: prospect.Position,
			School:   prospect.TeamName,
			Height:   Height(prospect.Height),
			Rank:     i + 1,
		}
		if prospect.Weight > 0 {
			weight := prospect.Weight
			player.Weight = &weight
		}
		if logos != nil && prospect.TeamName != "" {
			player.SchoolLogo = logos.Find(ctx, prospect.TeamName)
		}

		players = append(players, player)
	}

	return players, nil
}
