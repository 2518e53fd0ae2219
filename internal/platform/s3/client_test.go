package s3

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

func TestIsBucketAlreadyOwnedByYou(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"unrelated error", errors.New("boom"), false},
		{"typed owned-by-you", &types.BucketAlreadyOwnedByYou{}, true},
		{"typed already-exists", &types.BucketAlreadyExists{}, true},
		{"api error code", &smithy.GenericAPIError{Code: "BucketAlreadyOwnedByYou"}, true},
		{"other api error code", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isBucketAlreadyOwnedByYou(tt.err)
			if got != tt.want {
				t.Errorf("isBucketAlreadyOwnedByYou() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"unrelated error", errors.New("boom"), false},
		{"typed no-such-bucket", &types.NoSuchBucket{}, true},
		{"typed not-found", &types.NotFound{}, true},
		{"api error code", &smithy.GenericAPIError{Code: "NotFound"}, true},
		{"404 code", &smithy.GenericAPIError{Code: "404"}, true},
		{"other api error code", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isNotFoundError(tt.err)
			if got != tt.want {
				t.Errorf("isNotFoundError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	client, err := NewClient("https://fsn1.your-objectstorage.com", "fsn1", "key", "secret")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client == nil || client.s3 == nil {
		t.Fatal("NewClient() returned incomplete client")
	}
	if client.region != "fsn1" {
		t.Errorf("region = %q, want fsn1", client.region)
	}
}
