package cognito

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// initiateAuthAPI is the subset of the Cognito client used by the service.
// Narrowing the dependency to one method keeps the error mapping testable
// without a real user pool.
type initiateAuthAPI interface {
	InitiateAuth(
		ctx context.Context,
		params *cognitoidentityprovider.InitiateAuthInput,
		optFns ...func(*cognitoidentityprovider.Options),
	) (*cognitoidentityprovider.InitiateAuthOutput, error)
}

// Service implements auth.Authenticator against an AWS Cognito user pool.
// The client is constructed once from explicit configuration; there is no
// ambient global state and no per-call client setup.
type Service struct {
	client   initiateAuthAPI
	clientID string
	logger   *slog.Logger
}

// Ensure Service implements auth.Authenticator interface
var _ auth.Authenticator = (*Service)(nil)

// NewService creates a Cognito-backed Authenticator for the configured
// region and application client. Credentials for the AWS API itself come
// from the default provider chain.
func NewService(ctx context.Context, logger *slog.Logger, cfg config.CognitoConfig) (*Service, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Service{
		client:   cognitoidentityprovider.NewFromConfig(awsCfg),
		clientID: cfg.ClientID,
		logger:   logger,
	}, nil
}

// newServiceWithClient wires a Service around an existing client.
// Used by tests to substitute a fake Cognito API.
func newServiceWithClient(client initiateAuthAPI, clientID string, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		clientID: clientID,
		logger:   logger,
	}
}

// Authenticate submits a USER_PASSWORD_AUTH request with the caller's
// email as username. Authentication is attempted exactly once; failures
// are translated into the auth package's error taxonomy.
func (s *Service) Authenticate(
	ctx context.Context,
	email, password string,
) (*auth.TokenBundle, error) {
	log := s.logger.With("email", email)
	log.Info("authenticating user")

	out, err := s.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(s.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, s.mapError(log, err)
	}

	// A challenge response carries no usable tokens, so this check must
	// precede the result extraction below.
	if out.ChallengeName == types.ChallengeNameTypeNewPasswordRequired {
		log.Warn("temporary password detected, password change required")
		return nil, auth.ErrPasswordChangeRequired
	}

	result := out.AuthenticationResult
	if result == nil {
		log.Error("authentication succeeded but no result was returned")
		return nil, fmt.Errorf("%w: no authentication result received", auth.ErrAuthenticationFailed)
	}

	log.Info("authentication successful")

	return &auth.TokenBundle{
		IDToken:      aws.ToString(result.IdToken),
		AccessToken:  aws.ToString(result.AccessToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    int64(result.ExpiresIn),
	}, nil
}

// mapError translates the provider's error space into the application
// level taxonomy. The distinct Cognito exception kinds come first; any
// other provider error keeps its vendor code and message as a structured
// ProviderError; everything else (network failures, timeouts) becomes a
// wrapped ErrAuthenticationFailed.
func (s *Service) mapError(log *slog.Logger, err error) error {
	var (
		notAuthorized *types.NotAuthorizedException
		notConfirmed  *types.UserNotConfirmedException
		userNotFound  *types.UserNotFoundException
		resetRequired *types.PasswordResetRequiredException
		apiErr        smithy.APIError
	)

	switch {
	case errors.As(err, &notAuthorized):
		log.Error("invalid credentials", "error", err)
		return auth.ErrInvalidCredentials

	case errors.As(err, &notConfirmed):
		log.Error("user account not confirmed", "error", err)
		return auth.ErrAccountNotConfirmed

	case errors.As(err, &userNotFound):
		log.Error("user not found", "error", err)
		return auth.ErrUserNotFound

	case errors.As(err, &resetRequired):
		log.Error("password reset required", "error", err)
		return auth.ErrPasswordChangeRequired

	case errors.As(err, &apiErr):
		log.Error("provider error",
			"error_code", apiErr.ErrorCode(),
			"error", err)
		return &auth.ProviderError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}

	default:
		log.Error("unexpected authentication failure", "error", err)
		return fmt.Errorf("%w: %v", auth.ErrAuthenticationFailed, err)
	}
}
