package models

// Genre is a named catalog genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductionCompany describes a studio attached to a movie.
type ProductionCompany struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logoPath,omitempty"`
	OriginCountry string `json:"originCountry,omitempty"`
}

// Network describes a broadcaster attached to a series.
type Network struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logoPath,omitempty"`
	OriginCountry string `json:"originCountry,omitempty"`
}

// MovieDetails is the full detail record for a movie.
type MovieDetails struct {
	MediaSummary
	Genres              []Genre             `json:"genres,omitempty"`
	RuntimeMinutes      int                 `json:"runtimeMinutes,omitempty"`
	Tagline             string              `json:"tagline,omitempty"`
	ProductionCompanies []ProductionCompany `json:"productionCompanies,omitempty"`
}

// Season is a single season stub inside series details.
type Season struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview,omitempty"`
	AirDate      string  `json:"airDate,omitempty"`
	EpisodeCount int     `json:"episodeCount"`
	SeasonNumber int     `json:"seasonNumber"`
	PosterPath   string  `json:"posterPath,omitempty"`
	VoteAverage  float64 `json:"voteAverage,omitempty"`
}

// Episode is a single episode inside season details.
type Episode struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Overview       string  `json:"overview,omitempty"`
	AirDate        string  `json:"airDate,omitempty"`
	EpisodeNumber  int     `json:"episodeNumber"`
	StillPath      string  `json:"stillPath,omitempty"`
	VoteAverage    float64 `json:"voteAverage,omitempty"`
	RuntimeMinutes int     `json:"runtimeMinutes,omitempty"`
}

// SeasonDetails is a season with its episode list.
type SeasonDetails struct {
	Season
	Episodes []Episode `json:"episodes"`
}

// SeriesDetails is the full detail record for a series.
type SeriesDetails struct {
	MediaSummary
	Genres          []Genre   `json:"genres,omitempty"`
	EpisodeRuntimes []int     `json:"episodeRuntimes,omitempty"`
	Tagline         string    `json:"tagline,omitempty"`
	Networks        []Network `json:"networks,omitempty"`
	NumberOfSeasons int       `json:"numberOfSeasons,omitempty"`
	Seasons         []Season  `json:"seasons,omitempty"`
}

// Video is a trailer/teaser/clip attached to a catalog item.
type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// CastMember is one billed cast entry.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profilePath,omitempty"`
	Order       int    `json:"order"`
}

// Credits carries the cast for a catalog item.
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// PersonDetails describes a cast or crew member.
type PersonDetails struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Biography          string  `json:"biography,omitempty"`
	Birthday           string  `json:"birthday,omitempty"`
	Deathday           string  `json:"deathday,omitempty"`
	KnownForDepartment string  `json:"knownForDepartment,omitempty"`
	PlaceOfBirth       string  `json:"placeOfBirth,omitempty"`
	ProfilePath        string  `json:"profilePath,omitempty"`
	Popularity         float64 `json:"popularity,omitempty"`
}

// PersonCredit is one appearance in a person's combined credits.
type PersonCredit struct {
	MediaSummary
	Character string `json:"character,omitempty"`
	Job       string `json:"job,omitempty"`
}

// PersonCredits is a person's combined cast and crew credits.
type PersonCredits struct {
	Cast []PersonCredit `json:"cast"`
	Crew []PersonCredit `json:"crew"`
}

// ProfileImage is one profile image of a person.
type ProfileImage struct {
	FilePath    string  `json:"filePath"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`
	VoteAverage float64 `json:"voteAverage,omitempty"`
}

// MediaImages groups the artwork available for a catalog item.
type MediaImages struct {
	ID        int64          `json:"id"`
	Backdrops []ProfileImage `json:"backdrops"`
	Posters   []ProfileImage `json:"posters"`
	Logos     []ProfileImage `json:"logos"`
}
