package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	bdspro "github.com/mahimamj/bdspro"
	"github.com/mahimamj/bdspro/pkg/filestore"
	"github.com/mahimamj/bdspro/pkg/handler"
	"github.com/mahimamj/bdspro/pkg/repository"
	"github.com/mahimamj/bdspro/pkg/service"
	"github.com/mahimamj/bdspro/pkg/utils"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	if err := godotenv.Load(); err != nil {
		logrus.Infof("no .env file loaded: %s", err)
	}

	if err := initConfig(); err != nil {
		logrus.Fatalf("failed to read config: %s", err.Error())
	}

	db, err := repository.NewPostgresDB(repository.Config{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   viper.GetString("db.dbname"),
		SSLMode:  viper.GetString("db.sslmode"),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to postgres: %s", err.Error())
	}
	logrus.Info("database connected")

	store, err := filestore.NewLocal(viper.GetString("uploads.dir"))
	if err != nil {
		logrus.Fatalf("failed to init uploads dir: %s", err.Error())
	}

	mailer := utils.NewMailer(utils.MailConfig{
		Host:     viper.GetString("smtp.host"),
		Port:     viper.GetInt("smtp.port"),
		From:     viper.GetString("smtp.from"),
		Password: os.Getenv("SMTP_PASSWORD"),
		AdminTo:  viper.GetString("smtp.admin_to"),
	})

	repos := repository.NewRepository(db)
	services := service.NewService(repos, service.Deps{
		FileStore: store,
		Mailer:    mailer,
		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		BaseURL:   viper.GetString("app.base_url"),
	})
	handlers := handler.NewHandler(services, viper.GetString("app.admin_email"))

	srv := new(bdspro.Server)
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = viper.GetString("app.port")
		}
		if err := srv.Run(port, handlers.InitRoutes()); err != nil {
			logrus.Errorf("http server stopped: %s", err)
		}
	}()
	logrus.Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error on server shutdown: %s", err.Error())
	}
	if err := db.Close(); err != nil {
		logrus.Errorf("error on db connection close: %s", err.Error())
	}
}

func initConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}
