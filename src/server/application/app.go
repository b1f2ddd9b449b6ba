package application

import (
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/cockroachdb/errors"
	"github.com/guregu/dynamo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/medkit-app/medkit-be/src/server/cognito"
	"github.com/medkit-app/medkit-be/src/server/internal/lib/render"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/gateway"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/storage"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/usecase"
	sessionlib "github.com/medkit-app/medkit-be/src/server/internal/session"
	"github.com/medkit-app/medkit-be/src/server/internal/user/gateway"
	"github.com/medkit-app/medkit-be/src/server/internal/user/usecase"
	"github.com/medkit-app/medkit-be/src/shared/config"
	"github.com/medkit-app/medkit-be/src/shared/lib/dynamo"
	"github.com/medkit-app/medkit-be/src/shared/lib/rabbitmq"
)

type App struct {
	echo *echo.Echo
	port string
}

type Config struct {
	DynamoConfig      config.Dynamo
	IdentityProvider  cognito.Provider
	RabbitMQURL       string
	RabbitMQQueueName string
	TemplatesPath     string
	StaticPath        string
	Port              string
	Log               bool
}

func NewApp(config Config) App {
	e := echo.New()

	if config.Log {
		e.Use(middleware.Logger())
	}

	e.Renderer = render.MustLoad(config.TemplatesPath)
	e.Static("/static", config.StaticPath)

	dynamoDB := makeDynamoDB(config.DynamoConfig)
	mailPublisher := makeMailPublisher(config)

	userUsecase := userusecase.NewUsecase(config.IdentityProvider, mailPublisher)
	userGateway := usergateway.NewGateway(userUsecase)
	medicineGateway := makeMedicineGateway(dynamoDB)

	loginRequired := sessionlib.RequireLogin(userUsecase)

	// health check
	e.GET("/health-check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// authentication routes
	e.GET("/login", userGateway.LoginPage)
	e.GET("/register", userGateway.RegisterPage)
	e.POST("/submit-login", userGateway.SubmitLogin)
	e.POST("/submit-register", userGateway.SubmitRegister)
	e.POST("/logout", userGateway.Logout)

	// protected pages
	e.GET("/", func(c echo.Context) error {
		user, _ := sessionlib.UserFromContext(c)
		return c.Render(http.StatusOK, "index.html", echo.Map{"Email": user.Email})
	}, loginRequired)
	e.GET("/about", func(c echo.Context) error {
		user, _ := sessionlib.UserFromContext(c)
		return c.Render(http.StatusOK, "about.html", echo.Map{"Email": user.Email})
	}, loginRequired)

	// medicine routes
	e.GET("/medkit", medicineGateway.MedkitPage, loginRequired)
	e.POST("/add_medicine", medicineGateway.AddMedicine, loginRequired)
	e.POST("/edit_medicine", medicineGateway.EditMedicine, loginRequired)
	e.POST("/delete_medicine", medicineGateway.DeleteMedicine, loginRequired)

	return App{
		echo: e,
		port: config.Port,
	}
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop() error {
	err := a.echo.Close()
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	return nil
}

func makeMailPublisher(config Config) rabbitmq.Publisher {
	publisher, err := rabbitmq.NewQueuePublisher(config.RabbitMQURL, config.RabbitMQQueueName)
	if err != nil {
		panic(errors.Wrap(err, "Failed to create rabbitMQ publisher"))
	}

	return publisher
}

func makeDynamoDB(dynamoConfig config.Dynamo) dynamolib.DynamoDBWrapper {
	dbSession := session.Must(session.NewSession())

	var dbConfig *aws.Config

	switch t := dynamoConfig.(type) {
	case config.ProdDynamo:
		dbConfig = aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(
				t.AccessKeyID,
				t.SecretAccessKey,
				"",
			)).
			WithRegion(t.Region)

	case config.LocalDynamo:
		dbConfig = aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(
				t.AccessKeyID,
				t.SecretAccessKey,
				"",
			)).
			WithRegion(t.Region).
			WithEndpoint(t.Host)

	default:
		panic("Unexpected dynamo config type")
	}

	db := dynamo.New(dbSession, dbConfig)
	return dynamolib.NewDynamoDBWrapper(db)
}

func makeMedicineGateway(dynamoDB dynamolib.DynamoDBWrapper) medicinegateway.Gateway {
	medicineDB := medicinestorage.NewDB(dynamoDB)
	medicineUsecase := medicineusecase.NewUsecase(medicineDB)
	return medicinegateway.NewGateway(medicineUsecase)
}
