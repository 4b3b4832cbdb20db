package mocks

import (
	"context"

	"github.com/centpub/centpub/domain"
	"github.com/centpub/centpub/publisher"
)

// MockDeploymentManager implements the DeploymentManager interface for testing
type MockDeploymentManager struct {
	UploadFunc       func(ctx context.Context, bundlePath string, opts publisher.UploadOptions) (string, error)
	StatusFunc       func(ctx context.Context, deploymentID string) (*domain.Deployment, error)
	PublishFunc      func(ctx context.Context, deploymentID string) error
	DropFunc         func(ctx context.Context, deploymentID string) error
	WaitForStateFunc func(ctx context.Context, deploymentID string, target domain.DeploymentState) (*domain.Deployment, error)
}

func (m *MockDeploymentManager) Upload(ctx context.Context, bundlePath string, opts publisher.UploadOptions) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, bundlePath, opts)
	}
	return "", nil
}

func (m *MockDeploymentManager) Status(ctx context.Context, deploymentID string) (*domain.Deployment, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx, deploymentID)
	}
	return &domain.Deployment{ID: deploymentID}, nil
}

func (m *MockDeploymentManager) Publish(ctx context.Context, deploymentID string) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, deploymentID)
	}
	return nil
}

func (m *MockDeploymentManager) Drop(ctx context.Context, deploymentID string) error {
	if m.DropFunc != nil {
		return m.DropFunc(ctx, deploymentID)
	}
	return nil
}

func (m *MockDeploymentManager) WaitForState(ctx context.Context, deploymentID string, target domain.DeploymentState) (*domain.Deployment, error) {
	if m.WaitForStateFunc != nil {
		return m.WaitForStateFunc(ctx, deploymentID, target)
	}
	return &domain.Deployment{ID: deploymentID, State: target}, nil
}
