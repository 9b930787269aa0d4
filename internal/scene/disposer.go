package scene

import "go.uber.org/zap"

// Dispose releases every GPU-owned object reachable from the given scenes.
// Nil scenes and nil resource entries are skipped, so it is safe on scene
// sets that were only partially constructed, and calling it again on an
// already-released set is a no-op.
func Dispose(log *zap.Logger, scenes ...Scene) {
	released := 0
	for _, s := range scenes {
		if s == nil {
			continue
		}
		for _, r := range s.Resources() {
			if r == nil {
				continue
			}
			r.Release()
			released++
		}
	}
	log.Debug("scene resources released", zap.Int("count", released))
}
