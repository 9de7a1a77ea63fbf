package concurrent

// SaveLineJobItem satu record line network yang mau disimpan ke kv.
type SaveLineJobItem struct {
	KeyStr string
	Val    []byte
}

// OriginJobItem satu kandidat origin untuk multi-origin search.
type OriginJobItem struct {
	Index  int
	Origin int32
}

type JobI interface {
	SaveLineJobItem | OriginJobItem
}

type JobFunc[T JobI, G any] func(job T) G
