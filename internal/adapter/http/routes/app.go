package routes

import (
	"context"
	"fmt"

	"estimatepro/internal/adapter/http/handlers"
	"estimatepro/internal/adapter/mail"
	"estimatepro/internal/adapter/persistence/repository"
	"estimatepro/internal/adapter/persistence/session"
	"estimatepro/internal/adapter/spreadsheet"
	"estimatepro/internal/adapter/storage"
	"estimatepro/internal/adapter/token"
	"estimatepro/internal/infrastructure/cache"
	"estimatepro/internal/infrastructure/config"
	"estimatepro/internal/infrastructure/database"
	"estimatepro/internal/infrastructure/payments"
	s3client "estimatepro/internal/infrastructure/storage"
	"estimatepro/internal/jobs"
	"estimatepro/internal/usecase"
	"estimatepro/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type app struct {
	handlers  Handlers
	auth      usecase.IAuthUseCase
	trialJobs *jobs.TrialJobs
	close     func()
}

func buildApp(ctx context.Context, cfg config.Config) (*app, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	builderRepo := repository.NewBuilderDynamoRepository(ddb)
	leadRepo := repository.NewLeadDynamoRepository(ddb)
	paymentRepo := repository.NewSubscriptionPaymentDynamoRepository(ddb)

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	sessions := session.NewRedisSessionStore(rdb)

	tokens, err := token.NewJWTIssuer(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}

	mailer, err := newMailer(cfg)
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}

	var photos interfaces.IPhotoStorage
	if cfg.S3.Bucket != "" {
		s3c, err := s3client.NewS3Client(ctx, cfg.S3.Endpoint)
		if err != nil {
			_ = rdb.Close()
			return nil, err
		}
		photos = storage.NewS3PhotoStorage(s3c, cfg.S3.Bucket)
	} else {
		zap.S().Warnf("[app][wiring] S3_BUCKET not set, survey photos will be dropped")
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		zap.S().Warnf("[app][wiring] Mercado Pago gateway not configured err=%v", err)
	} else {
		gateway = mpGateway
	}
	mockMode := payments.IsMockEnabled()

	authUC := usecase.NewAuthUseCase(builderRepo, sessions, tokens, mailer, usecase.AuthSettings{
		AdminEmail:       cfg.AdminEmail,
		FrontendURL:      cfg.FrontendURL,
		TrialPeriodDays:  cfg.TrialPeriodDays,
		RefreshTokenTTL:  cfg.RefreshTokenTTL,
		PasswordResetTTL: cfg.PasswordResetTTL,
	})
	builderUC := usecase.NewBuilderUseCase(builderRepo, spreadsheet.NewPricingXLSX())
	leadUC := usecase.NewLeadUseCase(leadRepo)
	surveyUC := usecase.NewSurveyUseCase(builderRepo, leadRepo, photos, mailer, cfg.FrontendURL)
	adminUC := usecase.NewAdminUseCase(builderRepo, leadRepo)
	paymentUC := usecase.NewSubscriptionPaymentUseCase(paymentRepo, builderRepo, gateway, usecase.SubscriptionSettings{
		Price:           cfg.SubscriptionPrice,
		MockMode:        mockMode,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	})
	trialUC := usecase.NewTrialUseCase(builderRepo, mailer, cfg.FrontendURL)

	trialJobs, err := jobs.NewTrialJobs(trialUC, cfg.TrialJobSchedule)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("schedule trial jobs: %w", err)
	}

	return &app{
		handlers: Handlers{
			Auth:    handlers.NewAuthHandler(authUC),
			Builder: handlers.NewBuilderHandler(builderUC),
			Lead:    handlers.NewLeadHandler(leadUC),
			Survey: handlers.NewSurveyHandler(surveyUC, handlers.UploadPolicy{
				MaxFileSize:  cfg.UploadMaxFileSize,
				MaxPhotos:    cfg.UploadMaxPhotos,
				AllowedTypes: cfg.UploadAllowedTypes,
			}),
			Payments: handlers.NewSubscriptionPaymentHandler(paymentUC, mockMode),
			Admin:    handlers.NewAdminHandler(adminUC, builderUC),
		},
		auth:      authUC,
		trialJobs: trialJobs,
		close: func() {
			if err := rdb.Close(); err != nil {
				zap.S().Warnf("[app][wiring] redis close failed err=%v", err)
			}
		},
	}, nil
}

func newMailer(cfg config.Config) (*mail.Mailer, error) {
	if cfg.SMTP.Host == "" {
		zap.S().Warnf("[app][wiring] SMTP_HOST not set, emails are only logged")
		return mail.NewLogMailer(), nil
	}
	return mail.NewSMTPMailer(mail.SMTPSettings{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
}
