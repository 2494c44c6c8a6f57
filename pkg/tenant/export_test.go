package tenant

import (
	"sync"

	"github.com/secmon-lab/graw/pkg/domain/types"
)

const LockStripes = lockStripes

func (x *Registry) TenantLock(id types.TenantID) *sync.Mutex {
	return x.tenantLock(id)
}
