package model

import "time"

type Genre struct {
	DTO
	Name   string  `gorm:"size:100;uniqueIndex;not null" validate:"required" json:"name"`
	Movies []Movie `gorm:"many2many:movie_genres;" json:"-"`
}

type Country struct {
	DTO
	Name   string  `gorm:"size:100;uniqueIndex;not null" validate:"required" json:"name"`
	Code   string  `gorm:"size:2;uniqueIndex" json:"code"` // ISO 3166-1 alpha-2
	Movies []Movie `gorm:"foreignKey:CountryId" json:"-"`
}

// Person covers both actors and directors; the role lives on the join row.
type Person struct {
	DTO
	Name        string     `gorm:"size:255;not null;index" validate:"required" json:"name"`
	Birthday    *time.Time `json:"birthday"`
	Nationality string     `gorm:"size:100" json:"nationality"`
	Avatar      *string    `json:"avatar" validate:"omitempty,url"`
	Biography   *string    `gorm:"type:text" json:"biography"`
}

const (
	PersonRoleDirector = "DIRECTOR"
	PersonRoleActor    = "ACTOR"
)

type MoviePerson struct {
	MovieId  uint   `gorm:"primaryKey" json:"movieId"`
	PersonId uint   `gorm:"primaryKey" json:"personId"`
	Role     string `gorm:"primaryKey;size:20" json:"role"` // DIRECTOR, ACTOR
	Movie    Movie  `gorm:"foreignKey:MovieId" json:"-"`
	Person   Person `gorm:"foreignKey:PersonId" json:"person"`
}

type Movie struct {
	DTO
	Title       string  `gorm:"not null;index" validate:"required" json:"title"`
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Duration    int     `gorm:"not null" validate:"required,gt=0" json:"duration"` // minutes
	Language    string  `gorm:"size:50" json:"language"`
	Description string  `gorm:"type:text" json:"description"`
	PosterUrl   *string `gorm:"type:varchar(255)" json:"posterUrl"`
	TrailerUrl  *string `gorm:"type:varchar(255)" json:"trailerUrl"`

	CountryId *uint    `json:"countryId"`
	Country   *Country `gorm:"foreignKey:CountryId" json:"country,omitempty"`
	Genres    []Genre  `gorm:"many2many:movie_genres;" json:"genres"`
	Persons   []MoviePerson `gorm:"foreignKey:MovieId" json:"persons"`

	AgeRestriction string     `gorm:"size:5" validate:"omitempty,oneof=P K T13 T16 T18" json:"ageRestriction"`
	DateRelease    time.Time  `gorm:"type:date;not null" validate:"required" json:"dateRelease"`
	DateEnd        *time.Time `gorm:"type:date" json:"dateEnd"`
	Status         string     `gorm:"size:20;not null;default:'COMING_SOON'" json:"status"` // COMING_SOON, NOW_SHOWING, ENDED
}

type CreateMovieInput struct {
	Title          string     `json:"title" validate:"required"`
	Duration       int        `json:"duration" validate:"required,gt=0"`
	Language       string     `json:"language" validate:"omitempty,max=50"`
	Description    string     `json:"description"`
	CountryId      *uint      `json:"countryId"`
	GenreIds       []uint     `json:"genreIds" validate:"required,min=1,dive,required"`
	DirectorIds    []uint     `json:"directorIds" validate:"omitempty,dive,required"`
	ActorIds       []uint     `json:"actorIds" validate:"omitempty,dive,required"`
	AgeRestriction string     `json:"ageRestriction" validate:"omitempty,oneof=P K T13 T16 T18"`
	DateRelease    time.Time  `json:"dateRelease" validate:"required"`
	DateEnd        *time.Time `json:"dateEnd"`
}

type EditMovieInput struct {
	Title          *string    `json:"title"`
	Duration       *int       `json:"duration" validate:"omitempty,gt=0"`
	Language       *string    `json:"language"`
	Description    *string    `json:"description"`
	CountryId      *uint      `json:"countryId"`
	GenreIds       *[]uint    `json:"genreIds"`
	DirectorIds    *[]uint    `json:"directorIds"`
	ActorIds       *[]uint    `json:"actorIds"`
	AgeRestriction *string    `json:"ageRestriction" validate:"omitempty,oneof=P K T13 T16 T18"`
	DateRelease    *time.Time `json:"dateRelease"`
	DateEnd        *time.Time `json:"dateEnd"`
	Status         *string    `json:"status" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED"`
	PosterUrl      *string    `json:"posterUrl" validate:"omitempty,url"`
	TrailerUrl     *string    `json:"trailerUrl" validate:"omitempty,url"`
}

type FilterMovieInput struct {
	Pagination
	Title   string `query:"title"`
	GenreId uint   `query:"genreId"`
	Status  string `query:"status" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED"`
}

type CreatePersonInput struct {
	Name        string     `json:"name" validate:"required,min=2,max=255"`
	Birthday    *time.Time `json:"birthday"`
	Nationality string     `json:"nationality" validate:"omitempty,max=100"`
	Avatar      *string    `json:"avatar" validate:"omitempty,url"`
	Biography   *string    `json:"biography"`
}

type UpdatePersonInput struct {
	Name        *string    `json:"name" validate:"omitempty,min=2,max=255"`
	Birthday    *time.Time `json:"birthday"`
	Nationality *string    `json:"nationality" validate:"omitempty,max=100"`
	Avatar      *string    `json:"avatar" validate:"omitempty,url"`
	Biography   *string    `json:"biography"`
}

type FilterPersonInput struct {
	Pagination
	Name string `query:"name"`
	Role string `query:"role" validate:"omitempty,oneof=DIRECTOR ACTOR"`
}
