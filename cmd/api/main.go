package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"moviehub/internal/adapter/api"
	"moviehub/internal/adapter/api/handler"
	apimiddleware "moviehub/internal/adapter/api/middleware"
	"moviehub/internal/adapter/api/router"
	"moviehub/internal/adapter/repository"
	"moviehub/internal/infrastructure/firebase"
	"moviehub/internal/infrastructure/ratelimit"
	"moviehub/internal/infrastructure/tmdb"
	"moviehub/internal/infrastructure/websocket"
	"moviehub/internal/livesync"
	"moviehub/internal/usecase"
	"moviehub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	authClient := firebase.NewAuthClient(fbAuth)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	syncer := livesync.NewSyncer()
	defer syncer.CloseAll()

	ratingRepo := repository.NewFirestoreRatingRepository(firestoreClient, syncer)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient, syncer)
	watchlistRepo := repository.NewFirestoreWatchlistRepository(firestoreClient, syncer)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient, syncer)

	catalog := tmdb.NewClient(cfg.TMDBApiKey, cfg.TMDBBaseURL, cfg.TMDBImageURL)

	hub := websocket.NewHub()

	movieUseCase := usecase.NewMovieUseCase(catalog)
	activityUseCase := usecase.NewActivityUseCase(ratingRepo, reviewRepo)
	watchlistUseCase := usecase.NewWatchlistUseCase(watchlistRepo)
	profileUseCase := usecase.NewProfileUseCase(userRepo)
	recommendationUseCase := usecase.NewRecommendationUseCase(catalog, userRepo)
	liveSessionUseCase := usecase.NewLiveSessionUseCase(
		ratingRepo,
		reviewRepo,
		watchlistRepo,
		userRepo,
		hub,
		recommendationUseCase,
	)

	hub.OnDisconnect(liveSessionUseCase.Detach)
	hub.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	limiter.StartCleanup(stopCleanup)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, router.Handlers{
		Health:         handler.NewHealthHandler(),
		Movie:          handler.NewMovieHandler(movieUseCase, liveSessionUseCase),
		Activity:       handler.NewActivityHandler(activityUseCase),
		Watchlist:      handler.NewWatchlistHandler(watchlistUseCase),
		Profile:        handler.NewProfileHandler(profileUseCase),
		Recommendation: handler.NewRecommendationHandler(recommendationUseCase),
		WebSocket:      handler.NewWebSocketHandler(hub, authClient, liveSessionUseCase),
	}, authMiddleware, rateLimitMiddleware)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
