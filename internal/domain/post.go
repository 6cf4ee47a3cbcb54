package domain

// CategoryWriting is the category label published for every scraped blog
// post, matching the fact-card taxonomy used by the frontend.
const CategoryWriting = "Writing"

// DefaultSignal is the signal level assigned to posts that don't declare one.
const DefaultSignal = 3

// Post is the internal blog post record built by the crawler. It is a
// superset of the public shape: URL, PublishedAt and ReadingTime never leave
// the process.
type Post struct {
	ID          string
	Title       string
	Blurb       string
	Fact        string
	Tags        []string
	Projects    []string
	Category    string
	Signal      int
	URL         string
	PublishedAt string
	ReadingTime string
}

// BlogPost is the public shape served by the blog endpoints.
type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Blurb    string   `json:"blurb"`
	Fact     string   `json:"fact"`
	Tags     []string `json:"tags"`
	Projects []string `json:"projects"`
	Category string   `json:"category"`
	Signal   int      `json:"signal"`
}

// Public converts the internal record to the public shape, stripping the
// internal-only fields.
func (p Post) Public() BlogPost {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	projects := p.Projects
	if projects == nil {
		projects = []string{}
	}
	return BlogPost{
		ID:       p.ID,
		Title:    p.Title,
		Blurb:    p.Blurb,
		Fact:     p.Fact,
		Tags:     tags,
		Projects: projects,
		Category: p.Category,
		Signal:   p.Signal,
	}
}

// BlogSearchResponse is the response of the blog search endpoint. Total is
// the match count before truncation to the requested limit.
type BlogSearchResponse struct {
	Results []BlogPost `json:"results"`
	Total   int        `json:"total"`
	Query   string     `json:"query"`
}
