package routes

import (
	"movieflix/config"
	fileController "movieflix/controllers/file"
	forgotPasswordController "movieflix/controllers/forgotpassword"
	movieController "movieflix/controllers/movie"
	"movieflix/httpServices/mail"
	"movieflix/logger"
	"movieflix/repository"
	movieService "movieflix/services/movie"
	otpService "movieflix/services/otp"
	"movieflix/services/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and controllers and mounts
// the HTTP surface. It also starts the async audit logger and returns it
// together with the OTP service so main can hand both to the sweeper.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) (*logger.AsyncLogger, *otpService.Service) {
	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()

	movieRepo := repository.NewMovieRepository(db)
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)

	files := storage.NewFileService()
	mailer := mail.NewSMTPMailer(cfg)

	movies := movieService.NewMovieService(movieRepo, files, cfg)
	otp := otpService.NewOTPService(otpRepo, userRepo, mailer, cfg)

	movieCtl := movieController.NewMovieController(movies, asyncLogger, cfg)
	resetCtl := forgotPasswordController.NewForgotPasswordController(otp, asyncLogger)
	fileCtl := fileController.NewFileController(files, cfg)

	/*=============================================================================
	| Movie catalog
	===============================================================================*/
	movieGroup := app.Group("/api/v1/movie")
	movieGroup.Post("/add-movie", movieCtl.AddMovie)
	movieGroup.Get("/all", movieCtl.GetAllMovies)
	movieGroup.Get("/allMoviesPage", movieCtl.GetMoviesWithPagination)
	movieGroup.Get("/allMoviesPageAndSorting", movieCtl.GetMoviesWithPaginationAndSorting)
	movieGroup.Put("/update/:idMovie", movieCtl.UpdateMovie)
	movieGroup.Delete("/delete/:idMovie", movieCtl.DeleteMovie)
	movieGroup.Get("/:idMovie", movieCtl.GetMovie)

	/*=============================================================================
	| Password reset
	===============================================================================*/
	resetGroup := app.Group("/forgotPassword")
	resetGroup.Post("/verifyMail/:email", resetCtl.VerifyMail)
	resetGroup.Post("/verifyOtp/:otp/:email", resetCtl.VerifyOtp)
	resetGroup.Post("/changePassword/:email", resetCtl.ChangePassword)

	/*=============================================================================
	| Poster files
	===============================================================================*/
	app.Get("/file/:filename", fileCtl.ServeFile)

	return asyncLogger, otp
}
