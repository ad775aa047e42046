package router

import (
	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	// gateway callbacks live outside /api: VNPay calls these URLs directly
	app.Get("/vnpay/return", handler.VNPayReturn)
	app.Get("/vnpay/ipn", handler.VNPayIPN)
	app.Post("/vnpay/ipn", handler.VNPayIPN)
	app.Post("/payments/callback", handler.PaymentCallbackNotify)

	app.Use("/ws", handler.WebSocketUpgrade)
	app.Get("/ws/seats/:showtimeId", handler.SeatMapSocket())

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	// public catalog
	movies := v1.Group("/movies")
	movies.Get("/", handler.GetMovies)
	movies.Get("/now-showing", handler.GetNowShowing)
	movies.Get("/coming-soon", handler.GetComingSoon)
	movies.Get("/:slug", handler.GetMovieBySlug)

	v1.Get("/genres", handler.GetGenres)
	v1.Get("/countries", handler.GetCountries)
	v1.Get("/persons", handler.GetPersons)
	v1.Get("/persons/:id", handler.GetPersonById)
	v1.Get("/ticket-prices", handler.GetTicketPrices)

	cinemas := v1.Group("/cinemas")
	cinemas.Get("/", handler.GetCinemas)
	cinemas.Get("/:slug", handler.GetCinemaBySlug)

	showtimes := v1.Group("/showtimes")
	showtimes.Get("/", handler.GetShowtimes)
	showtimes.Get("/:id", handler.GetShowtimeById)

	// booking flow; guests allowed, a token attaches the order to the account
	bookings := v1.Group("/bookings", middleware.OptionalJWT())
	bookings.Get("/seat/:showtimeId", handler.GetSeatMap)
	bookings.Post("/seat/:showtimeId/toggle", handler.ToggleSeatSelection)
	bookings.Get("/seat/:showtimeId/selection", handler.GetSeatSelection)
	bookings.Post("/", validate.CreateBooking(), handler.CreateBooking)
	bookings.Get("/confirmation/callback", handler.GetCallbackConfirmation)
	bookings.Get("/:orderCode/confirmation", handler.GetConfirmation)

	payments := v1.Group("/payments", middleware.OptionalJWT())
	payments.Post("/", validate.CreatePayment(), handler.CreatePayment)
	payments.Get("/:orderCode", handler.GetPaymentUrl)

	orders := v1.Group("/orders", middleware.OptionalJWT())
	orders.Get("/", middleware.Protected(), handler.GetMyOrders)
	orders.Get("/:orderCode", handler.GetOrderDetail)
	orders.Post("/:orderCode/cancel", handler.CancelOrder)

	// admin surface
	admin := v1.Group("/admin", logger.New(), middleware.Protected(), middleware.AdminOnly())

	admin.Post("/movies", validate.CreateMovie(), handler.CreateMovie)
	admin.Put("/movies/:id", validate.EditMovie(), handler.EditMovie)
	admin.Delete("/movies/:id", handler.DeleteMovie)
	admin.Post("/movies/:id/poster", handler.UploadMoviePoster)
	admin.Post("/media/signature", handler.GetUploadSignature)

	admin.Post("/genres", handler.CreateGenre)
	admin.Put("/genres/:id", validate.GetById("id"), handler.EditGenre)
	admin.Delete("/genres/:id", validate.GetById("id"), handler.DeleteGenre)

	admin.Post("/countries", handler.CreateCountry)
	admin.Put("/countries/:id", validate.GetById("id"), handler.EditCountry)
	admin.Delete("/countries/:id", validate.GetById("id"), handler.DeleteCountry)

	admin.Post("/persons", validate.CreatePerson(), handler.CreatePerson)
	admin.Put("/persons/:id", validate.UpdatePerson(), handler.EditPerson)
	admin.Delete("/persons/:id", handler.DeletePerson)

	admin.Post("/cinemas", validate.CreateCinema(), handler.CreateCinema)
	admin.Put("/cinemas/:id", validate.EditCinema(), handler.EditCinema)
	admin.Delete("/cinemas/:id", handler.DeleteCinema)

	admin.Post("/rooms", validate.CreateRoom(), handler.CreateRoom)
	admin.Put("/rooms/:id", validate.EditRoom(), handler.EditRoom)
	admin.Delete("/rooms/:id", handler.DeleteRoom)

	admin.Put("/ticket-prices", validate.UpsertTicketPrice(), handler.UpsertTicketPrice)

	admin.Post("/showtimes", validate.CreateShowtime(), handler.CreateShowtime)
	admin.Post("/showtimes/batch", validate.CreateShowtimeBatch(), handler.CreateShowtimeBatch)
	admin.Put("/showtimes/:id", validate.EditShowtime(), handler.EditShowtime)
	admin.Delete("/showtimes/:id", handler.DeleteShowtime)
	admin.Delete("/showtimes", validate.Delete(), handler.DeleteShowtimeBatch)

	admin.Get("/tickets", handler.GetTickets)
	admin.Post("/tickets/:ticketCode/check-in", handler.CheckInTicket)

	admin.Get("/users", handler.GetUsers)
	admin.Post("/users", validate.CreateUser(), handler.CreateUser)
	admin.Put("/users/:id", validate.UpdateUser(), handler.EditUser)
	admin.Delete("/users/:id", handler.DeleteUser)
}
