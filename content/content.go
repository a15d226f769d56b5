// Package content holds the site's static tables: branding, staff, programs,
// branches and gallery layout. Tables are decoded from YAML once and treated
// as read-only afterwards.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/littlewonders/playlearn/gallery"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("content: invalid")

// Content is the complete set of tables rendered by the site.
type Content struct {
	Site     Site          `yaml:"site"`
	Footer   Footer        `yaml:"footer"`
	Mission  []InfoCard    `yaml:"mission"`
	Values   []Value       `yaml:"values"`
	Founders []Founder     `yaml:"founders"`
	Team     []Member      `yaml:"team"`
	Programs Programs      `yaml:"programs"`
	Branches []Branch      `yaml:"branches"`
	Gallery  GalleryConfig `yaml:"gallery"`
}

// Site is the branding shown in the head, hero and nav bar.
type Site struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Tagline      string `yaml:"tagline"`
	Description  string `yaml:"description"`
	Logo         string `yaml:"logo"`
	Favicon      string `yaml:"favicon"`
	HeroImage    string `yaml:"hero_image"`
	MissionImage string `yaml:"mission_image"`
	AdmissionURL string `yaml:"admission_url"`
	Enrollment   string `yaml:"enrollment"`
}

// Footer is the footer's contact column.
type Footer struct {
	Blurb    string   `yaml:"blurb"`
	Phones   []string `yaml:"phones"`
	Email    string   `yaml:"email"`
	Campuses []Campus `yaml:"campuses"`
}

// Campus is a short address block.
type Campus struct {
	Name  string   `yaml:"name"`
	Lines []string `yaml:"lines"`
}

// InfoCard is one numbered mission statement.
type InfoCard struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Theme       string `yaml:"theme"`
}

// Value is one of the "what we believe" cards.
type Value struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Accent      string `yaml:"accent"`
}

// Founder is a spotlight section on the about page.
type Founder struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Bio   string `yaml:"bio"`
	Photo string `yaml:"photo"`
	Align string `yaml:"align"`
}

// Member is a team card.
type Member struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Quote string `yaml:"quote"`
}

var avatarGradients = []string{
	"bg-gradient-to-br from-pink-100 to-rose-200",
	"bg-gradient-to-br from-blue-100 to-indigo-200",
	"bg-gradient-to-br from-teal-100 to-emerald-200",
	"bg-gradient-to-br from-amber-100 to-orange-200",
}

// Photo is the member's portrait path.
func (m Member) Photo() string {
	return "/Team/" + m.Name + ".webp"
}

// Gradient is the avatar ring background, chosen by name length.
func (m Member) Gradient() string {
	return avatarGradients[len(m.Name)%len(avatarGradients)]
}

// Programs groups everything on the programs page.
type Programs struct {
	Regular     []Session  `yaml:"regular"`
	Stages      []Stage    `yaml:"stages"`
	Boosters    []Booster  `yaml:"boosters"`
	AfterSchool []Activity `yaml:"after_school"`
	Services    []Service  `yaml:"services"`
}

// Session is a regular daily program.
type Session struct {
	Time   string `yaml:"time"`
	Title  string `yaml:"title"`
	Sub    string `yaml:"sub"`
	Color  string `yaml:"color"`
	Rotate string `yaml:"rotate"`
}

// Stage is a step of the learning path.
type Stage struct {
	Title string `yaml:"title"`
	Image string `yaml:"image"`
	Color string `yaml:"color"`
}

// Booster is a short-term course.
type Booster struct {
	Title    string `yaml:"title"`
	Duration string `yaml:"duration"`
}

// Activity is an after-school program.
type Activity struct {
	Title      string `yaml:"title"`
	Image      string `yaml:"image"`
	Background string `yaml:"background"`
}

// Service is a therapy service.
type Service struct {
	Title string `yaml:"title"`
	Color string `yaml:"color"`
}

// Branch is a campus on the contact page.
type Branch struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Theme       string   `yaml:"theme"`
	Address     string   `yaml:"address"`
	Phones      []string `yaml:"phones"`
	Email       string   `yaml:"email"`
	MapURL      string   `yaml:"map_url"`
	ImageFolder string   `yaml:"image_folder"`
	ImageCount  int      `yaml:"image_count"`
}

// Album builds the branch photo album: /ALBUM/{folder}/{folder} (n).jpeg.
func (b Branch) Album() (*gallery.Album, error) {
	return gallery.NewAlbum("ALBUM/"+b.ImageFolder, b.ImageFolder, "jpeg", b.ImageCount, nil)
}

// GalleryConfig lays out the home page album.
type GalleryConfig struct {
	Dir   string         `yaml:"dir"`
	Stem  string         `yaml:"stem"`
	Ext   string         `yaml:"ext"`
	Count int            `yaml:"count"`
	Bands []gallery.Band `yaml:"bands"`
}

// Album builds the home page album.
func (g GalleryConfig) Album() (*gallery.Album, error) {
	return gallery.NewAlbum(g.Dir, g.Stem, g.Ext, g.Count, g.Bands)
}

// Branch looks up a branch by slug.
func (c *Content) Branch(slug string) (Branch, bool) {
	for _, b := range c.Branches {
		if b.Slug == slug {
			return b, true
		}
	}
	return Branch{}, false
}

// Load decodes and validates a YAML document.
func Load(r io.Reader) (*Content, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads the YAML document at path.
func LoadFile(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: open: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in tables.
func Default() *Content {
	c, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the invariants the pages rely on.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Site.Name) == "" {
		return fmt.Errorf("%w: site.name is required", ErrInvalid)
	}
	if _, err := c.Gallery.Album(); err != nil {
		return fmt.Errorf("%w: gallery: %v", ErrInvalid, err)
	}
	seen := make(map[string]struct{}, len(c.Branches))
	for i, b := range c.Branches {
		if b.Slug == "" {
			return fmt.Errorf("%w: branches[%d].slug is required", ErrInvalid, i)
		}
		if _, dup := seen[b.Slug]; dup {
			return fmt.Errorf("%w: duplicate branch slug %q", ErrInvalid, b.Slug)
		}
		seen[b.Slug] = struct{}{}
		if b.ImageFolder == "" || b.ImageCount <= 0 {
			return fmt.Errorf("%w: branch %q needs image_folder and a positive image_count", ErrInvalid, b.Slug)
		}
	}
	for i, m := range c.Team {
		if m.Name == "" {
			return fmt.Errorf("%w: team[%d].name is required", ErrInvalid, i)
		}
	}
	return nil
}
