package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// HydrateFromSSM overlays parameters from AWS SSM Parameter Store onto the
// config map. Parameters live under prefix (e.g. /portfolio/prod/); the final
// path segment becomes the config key. Values already present in the
// environment win, so a local override always beats the parameter store.
func HydrateFromSSM(ctx context.Context, cfg map[string]string, prefix string) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg)
	decrypt := true

	var nextToken *string
	for {
		out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
			Path:           &prefix,
			WithDecryption: &decrypt,
			NextToken:      nextToken,
		})
		if err != nil {
			return fmt.Errorf("fetching parameters under %s: %w", prefix, err)
		}

		for _, param := range out.Parameters {
			if param.Name == nil || param.Value == nil {
				continue
			}
			name := *param.Name
			if idx := strings.LastIndex(name, "/"); idx >= 0 {
				name = name[idx+1:]
			}
			if _, exists := cfg[name]; !exists {
				cfg[name] = *param.Value
				// Export so later config.New() snapshots see it too.
				os.Setenv(name, *param.Value)
			}
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return nil
}
