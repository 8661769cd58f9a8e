package invoker

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/lambda"
)

var ErrMissingFunctionName = errors.New("function name is required")

type lambdaInvoker interface {
	InvokeWithContext(ctx aws.Context, input *lambda.InvokeInput, opts ...request.Option) (*lambda.InvokeOutput, error)
}

// Invoker triggers the deployed report function by hand
type Invoker struct {
	client lambdaInvoker
}

func New(sess *session.Session) *Invoker {
	return &Invoker{client: lambda.New(sess)}
}

// Invoke calls the function synchronously and returns its raw payload.
// A function error reported by Lambda is returned together with the payload.
func (i *Invoker) Invoke(ctx context.Context, functionName string) ([]byte, error) {
	if functionName == "" {
		return nil, ErrMissingFunctionName
	}

	out, err := i.client.InvokeWithContext(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(functionName),
		InvocationType: aws.String(lambda.InvocationTypeRequestResponse),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", functionName, err)
	}

	if out.FunctionError != nil {
		return out.Payload, fmt.Errorf("function %s failed: %s", functionName, aws.StringValue(out.FunctionError))
	}

	return out.Payload, nil
}
