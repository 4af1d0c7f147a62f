package main

import (
	"context"

	"platform-lambda-api/internal/config"
	"platform-lambda-api/internal/handlers"
	"platform-lambda-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var dispatcher *lambda.Dispatcher

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	platformHandler := handlers.NewPlatformHandler(logrus.StandardLogger())
	router := lambda.NewRouter(handlers.LambdaRoutes(platformHandler))
	dispatcher = lambda.NewDispatcher(router, logrus.StandardLogger())

	sc := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"mode":     config.GetDeploymentMode(),
		"function": sc.FunctionName,
		"region":   sc.Region,
		"stage":    sc.Stage,
	}).Info("Dispatcher initialized")
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := lambda.DecodeRequest(event)
	if err != nil {
		logrus.WithError(err).Warn("Rejected malformed gateway event")
		return lambda.EncodeResponse(lambda.EncodeBadRequest("malformed gateway event")), nil
	}

	resp := dispatcher.Dispatch(ctx, req)
	return lambda.EncodeResponse(resp), nil
}

func main() {
	awslambda.Start(handler)
}
