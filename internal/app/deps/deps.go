package deps

import (
	"context"
	"sync"
	"time"

	"bookstand/internal/config"
	"bookstand/internal/core/domain/account"
	"bookstand/internal/core/domain/book"
	dl "bookstand/internal/core/domain/logging"
	dbaccount "bookstand/internal/db/account"
	dbbook "bookstand/internal/db/book"
	bookcache "bookstand/internal/implementations/book_cache"
	"bookstand/internal/implementations/email"
	"bookstand/internal/implementations/logging"
	passwordhasher "bookstand/internal/implementations/password_hasher"
	saltgenerator "bookstand/internal/implementations/salt_generator"
	tokenissuer "bookstand/internal/implementations/token_issuer"
	"bookstand/internal/rabbitmq"
	credentialevents "bookstand/internal/rabbitmq/publishers/credential_events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	AccountRepository account.AccountRepository
	BookRepository    book.Repository

	PasswordHasher     account.PasswordHasher
	SaltGenerator      account.SaltGenerator
	TokenIssuer        account.TokenIssuer
	RotationPublisher  account.RotationPublisher
	ChangeNoticeSender account.ChangeNoticeSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.AccountRepository = dbaccount.NewPgxRepository(deps.DB)
	deps.BookRepository = bookcache.NewRedis(
		dbbook.NewPgxRepository(deps.DB),
		deps.Redis,
		deps.Logger,
		deps.Config.BookCacheTTL,
	)

	deps.PasswordHasher = passwordhasher.NewArgon2()
	deps.SaltGenerator = saltgenerator.NewGenerator()
	deps.TokenIssuer = tokenissuer.NewJWT(
		deps.Config.Secret,
		deps.Config.ResetTokenValidDuration,
		deps.Now,
	)
	deps.ChangeNoticeSender = email.NewChangeNoticeSender(
		deps.AwsConfig,
		deps.Config.EmailSender,
		deps.Config.PasswordChangedEmailTemplate,
	)

	closeRotationPublisher := deps.initRabbitmqRotationPublisher()

	return deps, func() {
		closeFuncs := []func(){
			closeRotationPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKeyID,
				deps.Config.AwsSecretAccessKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqRotationPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.CredentialEventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.RotationPublisher = credentialevents.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.CredentialEventsExchange,
		credentialevents.RoutingKeyRotated,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down credential events publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Credential events publisher shut down.")
	}
}
