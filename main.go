package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/echovault/echovault-api/api"
	"github.com/echovault/echovault-api/enrich"
	"github.com/echovault/echovault-api/external/ai"
	"github.com/echovault/echovault-api/external/geoinfo"
	"github.com/echovault/echovault-api/store"
)

var (
	server         *api.Server
	echoVaultStore store.EchoVaultStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("echovault")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if echoVaultStore != nil {
			log.Info("Shutting down db store")
			echoVaultStore.Close()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	echoVaultStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	log.WithField("prefix", "init").Info("Initialized mongodb store")

	// AI analysis client for severity scoring and authenticity checks
	provider := viper.GetString("ai.provider")
	aiClient, err := ai.New(ai.Config{
		Provider: provider,
		APIKey:   viper.GetString(fmt.Sprintf("ai.%s.apikey", providerKey(provider))),
		Model:    viper.GetString(fmt.Sprintf("ai.%s.model", providerKey(provider))),
		Timeout:  viper.GetDuration("ai.timeout"),
	})
	if err != nil {
		log.Panicf("create ai client with error: %s", err)
	}
	log.WithField("prefix", "init").Info("Initialized ai client")

	// Reverse geocoding is optional; incidents are stored without a
	// place name when no map api key is configured.
	var geoClient geoinfo.GeoInfo
	if apiKey := viper.GetString("map.apikey"); apiKey != "" {
		geoClient, err = geoinfo.New(apiKey)
		if err != nil {
			log.Panicf("create geo client with error: %s", err)
		}
		log.WithField("prefix", "init").Info("Initialized geo client")
	}

	// Init http server
	server = api.NewServer(
		echoVaultStore,
		enrich.New(aiClient, aiClient),
		geoClient)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}

func providerKey(provider string) string {
	if provider == "" {
		return "gemini"
	}
	return strings.ToLower(provider)
}
