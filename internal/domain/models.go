package domain

// Slide is a single page of carousel content
type Slide struct {
	Title string `toml:"title"`
	Body  string `toml:"body,omitempty"`
}

// Carousel describes a carousel and its slides
type Carousel struct {
	ID     string
	Title  string
	Slides []Slide
}
