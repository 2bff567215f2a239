package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sh0ckwavezero/folio/internal/yamlutil"
)

// IndexFile optionally declares the listing order of a content directory.
const IndexFile = "_index.yaml"

type frontMatter struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Date        string `yaml:"date"`
}

// yamlFrontMatter decodes "---" blocks with the same YAML library as the
// index. Unknown keys such as tags are ignored.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", func(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
})

type index struct {
	Order []string `yaml:"order"`
}

// LoadDir reads every .md and .mdx file at the root of fsys. Posts listed in
// _index.yaml come first in that order; the rest follow by file name.
func LoadDir(fsys fs.FS) (*Static, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("content: read dir: %w", err)
	}

	var posts []Post
	for _, e := range entries {
		if e.IsDir() || !isPostFile(e.Name()) {
			continue
		}
		p, err := loadPost(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	order, err := readIndex(fsys)
	if err != nil {
		return nil, err
	}
	posts, err = applyIndex(posts, order)
	if err != nil {
		return nil, err
	}
	return NewStatic(posts...)
}

func isPostFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

func loadPost(fsys fs.FS, name string) (Post, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Post{}, fmt.Errorf("content: read %s: %w", name, err)
	}
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm, yamlFrontMatter)
	if err != nil {
		return Post{}, fmt.Errorf("content: front matter in %s: %w", name, err)
	}

	slug := fm.Slug
	if slug == "" {
		slug = strings.TrimSuffix(name, path.Ext(name))
	}
	title := fm.Title
	if title == "" {
		title = titleFromSlug(slug)
	}
	var date time.Time
	if fm.Date != "" {
		date, err = time.Parse(DateLayout, fm.Date)
		if err != nil {
			return Post{}, fmt.Errorf("content: date in %s: %w", name, err)
		}
	}
	return Post{
		PostSummary: PostSummary{
			Slug:        slug,
			Title:       title,
			Description: fm.Description,
			ImagePath:   fm.Image,
			PublishDate: date,
		},
		Body: string(body),
	}, nil
}

func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

func readIndex(fsys fs.FS) ([]string, error) {
	data, err := fs.ReadFile(fsys, IndexFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: read index: %w", err)
	}
	var idx index
	if err := yamlutil.UnmarshalStrict(data, &idx); err != nil {
		return nil, fmt.Errorf("content: parse index: %w", err)
	}
	return idx.Order, nil
}

func applyIndex(posts []Post, order []string) ([]Post, error) {
	// ReadDir already returns entries sorted by file name.
	if len(order) == 0 {
		return posts, nil
	}
	pos := make(map[string]int, len(order))
	for i, slug := range order {
		if _, dup := pos[slug]; dup {
			return nil, fmt.Errorf("content: index: %w: %q", ErrDuplicateSlug, slug)
		}
		pos[slug] = i
	}
	found := 0
	for _, p := range posts {
		if _, ok := pos[p.Slug]; ok {
			found++
		}
	}
	if found != len(order) {
		return nil, fmt.Errorf("content: index lists %d slugs but only %d posts match: %w", len(order), found, ErrNotFound)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		pi, iok := pos[posts[i].Slug]
		pj, jok := pos[posts[j].Slug]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		}
		return false
	})
	return posts, nil
}

// Dir is a Source backed by a file system that can be reloaded in place.
type Dir struct {
	fsys fs.FS

	mu      sync.RWMutex
	current *Static
}

// OpenDir loads fsys and returns a reloadable source.
func OpenDir(fsys fs.FS) (*Dir, error) {
	d := &Dir{fsys: fsys}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the directory. On error the previous posts stay active.
func (d *Dir) Reload() error {
	s, err := LoadDir(d.fsys)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.current = s
	d.mu.Unlock()
	return nil
}

func (d *Dir) snapshot() *Static {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

// ListPosts implements Source.
func (d *Dir) ListPosts() []PostSummary {
	return d.snapshot().ListPosts()
}

// Post implements Source.
func (d *Dir) Post(slug string) (Post, error) {
	return d.snapshot().Post(slug)
}
