package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type parameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// resolveSecret returns the env var named key, or when <key>_SSM_PARAM is set,
// the decrypted SSM parameter it names.
func resolveSecret(ctx context.Context, client parameterGetter, key string) (string, error) {
	paramName := getEnvOrDefault(key+"_SSM_PARAM", "")
	if paramName == "" {
		return getEnvOrDefault(key, ""), nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get SSM parameter %q for %s: %w", paramName, key, err)
	}
	if out.Parameter == nil {
		return "", fmt.Errorf("SSM parameter %q for %s has no value", paramName, key)
	}

	return aws.ToString(out.Parameter.Value), nil
}
