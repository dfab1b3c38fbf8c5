package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/container"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/router"
	"github.com/sirupsen/logrus"
)

var chiLambda *chiadapter.ChiLambdaV2

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return chiLambda.ProxyWithContextV2(ctx, req)
}

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		SessionHandler:  c.SessionContainer.Handler,
		LimitHandler:    c.LimitContainer.Handler,
		AttemptHandler:  c.AttemptContainer.Handler,
		StatsHandler:    c.StatsContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.NewV2(r)
		lambda.Start(handler)
		return
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logrus.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
