package helper

import (
	"log"
	"time"

	"cinema_booking/database"
	"cinema_booking/model"

	"github.com/go-co-op/gocron/v2"
)

var movieScheduler gocron.Scheduler

// AutoUpdateMovieStatus walks movies forward through
// COMING_SOON -> NOW_SHOWING -> ENDED based on release and end dates.
func AutoUpdateMovieStatus() {
	log.Println("[CRON] AutoUpdateMovieStatus triggered")

	db := database.DB
	today := time.Now().Truncate(24 * time.Hour)

	var movies []model.Movie
	if err := db.Find(&movies).Error; err != nil {
		log.Printf("movie status sweep failed: %v", err)
		return
	}

	for _, movie := range movies {
		updated := false

		releaseDate := movie.DateRelease.Truncate(24 * time.Hour)
		if !today.Before(releaseDate) && movie.Status == "COMING_SOON" {
			movie.Status = "NOW_SHOWING"
			updated = true
		}

		if movie.DateEnd != nil {
			endDate := movie.DateEnd.Truncate(24 * time.Hour)
			if today.After(endDate) && movie.Status == "NOW_SHOWING" {
				movie.Status = "ENDED"
				updated = true
			}
		}

		if updated {
			if err := db.Save(&movie).Error; err != nil {
				log.Printf("cannot update status of movie %q: %v", movie.Title, err)
			} else {
				log.Printf("movie %q -> %s", movie.Title, movie.Status)
			}
		}
	}
}

func StartMovieStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateMovieStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Movie status scheduler started (00:05)")
}

func StopMovieStatusScheduler() {
	if movieScheduler != nil {
		_ = movieScheduler.Shutdown()
	}
}
