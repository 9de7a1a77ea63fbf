package search

import (
	"sort"

	"lintang/metronav/pkg/datastructure"
)

// Frontier kumpulan path yang belum di-goal-test / di-expand. satu frontier cuma dipakai satu search.
type Frontier interface {
	// Insert satu batch hasil expand sesuai urutan strategi frontier.
	Insert(paths []*datastructure.Path)
	// Peek path yang akan di-pop berikutnya.
	Peek() (*datastructure.Path, bool)
	Pop() (*datastructure.Path, bool)
	Len() int
}

// Stack frontier LIFO (depth-first). batch dibalik lalu di-push, path pertama hasil expand ada di top.
type Stack struct {
	paths []*datastructure.Path
}

func NewStack() *Stack {
	return &Stack{paths: make([]*datastructure.Path, 0)}
}

func (s *Stack) Insert(paths []*datastructure.Path) {
	for i := len(paths) - 1; i >= 0; i-- {
		s.paths = append(s.paths, paths[i])
	}
}

func (s *Stack) Peek() (*datastructure.Path, bool) {
	if len(s.paths) == 0 {
		return nil, false
	}
	return s.paths[len(s.paths)-1], true
}

func (s *Stack) Pop() (*datastructure.Path, bool) {
	p, ok := s.Peek()
	if !ok {
		return nil, false
	}
	s.paths[len(s.paths)-1] = nil
	s.paths = s.paths[:len(s.paths)-1]
	return p, true
}

func (s *Stack) Len() int {
	return len(s.paths)
}

// Queue frontier FIFO (breadth-first). batch dibalik lalu di-append ke tail.
type Queue struct {
	paths []*datastructure.Path
	head  int
}

func NewQueue() *Queue {
	return &Queue{paths: make([]*datastructure.Path, 0)}
}

func (q *Queue) Insert(paths []*datastructure.Path) {
	for i := len(paths) - 1; i >= 0; i-- {
		q.paths = append(q.paths, paths[i])
	}
}

func (q *Queue) Peek() (*datastructure.Path, bool) {
	if q.head >= len(q.paths) {
		return nil, false
	}
	return q.paths[q.head], true
}

func (q *Queue) Pop() (*datastructure.Path, bool) {
	p, ok := q.Peek()
	if !ok {
		return nil, false
	}
	q.paths[q.head] = nil
	q.head++
	if q.head == len(q.paths) {
		q.paths = q.paths[:0]
		q.head = 0
	}
	return p, true
}

func (q *Queue) Len() int {
	return len(q.paths) - q.head
}

// RankFunc nilai yang dipakai buat urutan priority frontier.
type RankFunc func(p *datastructure.Path) float64

func ByG(p *datastructure.Path) float64 { return p.G }

func ByF(p *datastructure.Path) float64 { return p.F }

// PriorityFrontier frontier terurut ascending by rank (G untuk uniform cost, F untuk A*).
// rank sama -> yang di-insert duluan keluar duluan. path yang route nya sudah ada di frontier tidak di-insert lagi.
type PriorityFrontier struct {
	rank      RankFunc
	heap      *MinHeap[int64]
	seq       int64
	paths     map[int64]*datastructure.Path
	keys      map[string]int64
	byStation map[int32]map[int64]struct{}
}

func NewPriorityFrontier(rank RankFunc) *PriorityFrontier {
	return &PriorityFrontier{
		rank:      rank,
		heap:      NewMinHeap[int64](),
		paths:     make(map[int64]*datastructure.Path),
		keys:      make(map[string]int64),
		byStation: make(map[int32]map[int64]struct{}),
	}
}

func (f *PriorityFrontier) Insert(paths []*datastructure.Path) {
	for _, p := range paths {
		key := p.Key()
		if _, ok := f.keys[key]; ok {
			continue
		}
		f.seq++
		f.heap.Insert(PriorityQueueNode[int64]{Rank: f.rank(p), Item: f.seq})
		f.paths[f.seq] = p
		f.keys[key] = f.seq
		if f.byStation[p.Last()] == nil {
			f.byStation[p.Last()] = make(map[int64]struct{})
		}
		f.byStation[p.Last()][f.seq] = struct{}{}
	}
}

func (f *PriorityFrontier) Peek() (*datastructure.Path, bool) {
	node, err := f.heap.GetMin()
	if err != nil {
		return nil, false
	}
	return f.paths[node.Item], true
}

func (f *PriorityFrontier) Pop() (*datastructure.Path, bool) {
	node, err := f.heap.ExtractMin()
	if err != nil {
		return nil, false
	}
	p := f.paths[node.Item]
	f.forget(node.Item, p)
	return p, true
}

func (f *PriorityFrontier) Len() int {
	return f.heap.Size()
}

// RemoveEndingAt hapus semua path pending yang stasiun terakhirnya station. return jumlah yang dihapus.
func (f *PriorityFrontier) RemoveEndingAt(station int32) int {
	ids := f.byStation[station]
	removed := 0
	for id := range ids {
		if err := f.heap.DeleteNode(id); err != nil {
			continue
		}
		f.forget(id, f.paths[id])
		removed++
	}
	return removed
}

// Paths isi frontier sesuai urutan pop, tanpa mengubah frontier.
func (f *PriorityFrontier) Paths() []*datastructure.Path {
	nodes := make([]PriorityQueueNode[int64], len(f.heap.heap))
	copy(nodes, f.heap.heap)
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Rank != nodes[j].Rank {
			return nodes[i].Rank < nodes[j].Rank
		}
		return nodes[i].Item < nodes[j].Item
	})
	res := make([]*datastructure.Path, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, f.paths[n.Item])
	}
	return res
}

func (f *PriorityFrontier) forget(id int64, p *datastructure.Path) {
	delete(f.paths, id)
	delete(f.keys, p.Key())
	if set := f.byStation[p.Last()]; set != nil {
		delete(set, id)
		if len(set) == 0 {
			delete(f.byStation, p.Last())
		}
	}
}
