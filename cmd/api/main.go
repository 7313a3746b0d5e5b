package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kenneltrack/internal/config"
	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/handler"
	"kenneltrack/internal/infra/db"
	infrarepo "kenneltrack/internal/infra/repository"
	"kenneltrack/internal/server"
	"kenneltrack/internal/token"
	"kenneltrack/internal/usecase"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment as is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(
		&model.Dog{},
		&model.Runner{},
		&model.Sport{},
		&model.Location{},
		&model.Activity{},
		&model.DogWeight{},
		&model.Comment{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}

	// The API shares the signing secret with the auth service and runs the
	// stateless validate operation locally; no per-request call to authd.
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("build token codec")
	}

	authUC := usecase.NewAuthUsecase(
		cfg,
		infrarepo.NewUserGormRepository(gormDB),
		infrarepo.NewKennelGormRepository(gormDB),
		infrarepo.NewSessionGormRepository(gormDB),
		usecase.NewBcryptPasswordHasher(0),
		usecase.NewBcryptPasswordVerifier(),
		codec,
	)

	dogRepo := infrarepo.NewDogGormRepository(gormDB)
	weightRepo := infrarepo.NewWeightGormRepository(gormDB)
	activityRepo := infrarepo.NewActivityGormRepository(gormDB)
	sportRepo := infrarepo.NewSportGormRepository(gormDB)
	runnerRepo := infrarepo.NewRunnerGormRepository(gormDB)
	locationRepo := infrarepo.NewLocationGormRepository(gormDB)
	commentRepo := infrarepo.NewCommentGormRepository(gormDB)

	e := server.NewAPI(
		authUC,
		handler.NewDogHandler(usecase.NewDogUsecase(dogRepo)),
		handler.NewActivityHandler(usecase.NewActivityUsecase(activityRepo, sportRepo)),
		handler.NewWeightHandler(usecase.NewWeightUsecase(weightRepo, dogRepo)),
		handler.NewCommentHandler(usecase.NewCommentUsecase(commentRepo)),
		handler.NewCatalogHandler(usecase.NewCatalogUsecase(runnerRepo, sportRepo, locationRepo)),
	)

	log.Info().Str("port", cfg.Port).Str("env", cfg.GoEnv).Msg("activity api listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
