package database

import (
	"context"
	"testing"

	"marketplace_payments/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig_StaticCredentials(t *testing.T) {
	cfg := &config.Config{AWSRegion: "eu-west-1", AWSAccessKeyID: "local", AWSSecretAccessKey: "secret"}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestConnectDynamoDB_LocalEndpoint(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:          "us-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}

	client, err := ConnectDynamoDB(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", aws.ToString(client.Options().BaseEndpoint))
}
