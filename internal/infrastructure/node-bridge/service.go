package nodebridge

import (
	"context"
	"fmt"

	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

type service struct {
	apiURL string

	queryManager     *queryManager
	operationManager *operationManager
	notifyManager    *notifyManager
}

// NewService dials the node RPC endpoint and its push-event stream and
// returns them as a ports.NodeService. The status command acts as health
// check: an unreachable node fails fast instead of at first use.
func NewService(apiURL, wsURL string) (ports.NodeService, error) {
	cl := newClient(apiURL)
	svc := &service{
		apiURL:           apiURL,
		queryManager:     newQueryManager(cl),
		operationManager: newOperationManager(cl),
	}
	if _, err := svc.Query().Status(context.Background()); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	notifyManager, err := newNotifyManager(wsURL)
	if err != nil {
		return nil, err
	}
	svc.notifyManager = notifyManager

	return svc, nil
}

func (s *service) Query() ports.NodeQuery {
	return s.queryManager
}

func (s *service) Operation() ports.NodeOperation {
	return s.operationManager
}

func (s *service) Notification() ports.NodeNotification {
	return s.notifyManager
}

func (s *service) Close() {
	s.notifyManager.close()
}
