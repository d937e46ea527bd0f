package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/examtrack/examtrack-api/internal/container"
	"github.com/examtrack/examtrack-api/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		AuthMiddleware:  c.AuthMiddleware,
		AuthHandler:     c.AuthHandler,
		UserHandler:     c.UserContainer.Handler,
		CategoryHandler: c.CategoryContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		ProgressHandler: c.ProgressContainer.Handler,
		ScenarioHandler: c.ScenarioContainer.Handler,
		StatsHandler:    c.StatsContainer.Handler,
	})

	// Inside AWS the router is served through the Lambda proxy; anywhere
	// else it is a plain HTTP server.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler.(*chi.Mux))
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
