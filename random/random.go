package random

import (
	"fmt"
	"strconv"
	"strings"
)

// Intner is implemented by *Generator and *Locked.
type Intner interface {
	Intn(n int) int
	NextInt64(min, max int64) (int64, error)
}

// Weighted is a set of entries to draw from in proportion to their weight.
type Weighted interface {
	Len() int
	Weight(i int) int
}

// Sample draws n elements from distinct positions of numbers. If n covers the whole list a
// copy of it is returned unchanged.
func Sample(r Intner, numbers []int64, n int) []int64 {
	size := len(numbers)
	filter := make([]int64, size)
	copy(filter, numbers)
	if size == 0 || n >= size {
		return filter
	}
	if n <= 0 {
		return []int64{}
	}
	list := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		index := r.Intn(len(filter))
		list = append(list, filter[index])
		filter = append(filter[:index], filter[index+1:]...)
	}
	return list
}

// Shuffle permutes n elements with Fisher-Yates using swap.
func Shuffle(r Intner, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}

// PickWeighted draws up to n distinct indexes of w, each in proportion to its
// weight among the entries not yet drawn. Zero weight entries are never drawn.
func PickWeighted(r Intner, w Weighted, n int) ([]int, error) {
	size := w.Len()
	weights := make([]int, 0, size)
	indexes := make([]int, 0, size)
	var weightSum int
	for i := 0; i < size; i++ {
		weight := w.Weight(i)
		if weight < 0 {
			return nil, fmt.Errorf("%w: entry %d has weight %d", ErrNoWeight, i, weight)
		}
		weights = append(weights, weight)
		indexes = append(indexes, i)
		weightSum += weight
	}
	if weightSum <= 0 {
		return nil, ErrNoWeight
	}
	if n <= 0 {
		return []int{}, nil
	}
	if n > size {
		n = size
	}
	rd := make([]int, 0, n)
	for j := 0; j < n && weightSum > 0; j++ {
		ranNum := r.Intn(weightSum)
		for i := range weights {
			ranNum -= weights[i]
			if ranNum < 0 {
				rd = append(rd, indexes[i])
				weightSum -= weights[i]
				weights = append(weights[:i], weights[i+1:]...)
				indexes = append(indexes[:i], indexes[i+1:]...)
				break
			}
		}
	}
	return rd, nil
}

type numberEntry struct {
	lo, hi int
	weight int
}

// NumberExpr is a parsed number expression. The grammar, element by element:
//
//	12           a fixed value
//	1~10         a value drawn from the inclusive range
//	1,2,4        one of the listed elements
//	1:20,1~4:30  elements with weights, drawn in proportion to them
//
// Weights are all or nothing: once one element has one, every element must.
type NumberExpr struct {
	entries  []numberEntry
	weighted bool
}

// ParseNumber parses a number expression.
func ParseNumber(expr string) (*NumberExpr, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidExpr)
	}
	e := &NumberExpr{weighted: strings.Contains(expr, ":")}
	var weightSum int
	for _, value := range strings.Split(expr, ",") {
		valueStr := value
		entry := numberEntry{weight: 1}
		if e.weighted {
			endIndex := strings.Index(value, ":")
			if endIndex <= 0 {
				return nil, fmt.Errorf("%w: %q in %q has no weight", ErrInvalidExpr, value, expr)
			}
			valueStr = value[:endIndex]
			weight, err := strconv.Atoi(strings.TrimSpace(value[endIndex+1:]))
			if err != nil || weight < 0 {
				return nil, fmt.Errorf("%w: bad weight in %q", ErrInvalidExpr, value)
			}
			entry.weight = weight
		}
		lo, hi, err := parseBounds(valueStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpr, value, err)
		}
		entry.lo, entry.hi = lo, hi
		weightSum += entry.weight
		e.entries = append(e.entries, entry)
	}
	if weightSum <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoWeight, expr)
	}
	return e, nil
}

func parseBounds(args string) (int, int, error) {
	args = strings.TrimSpace(args)
	if strings.Index(args, "~") > 0 {
		tmp := strings.SplitN(args, "~", 2)
		v1, err := strconv.Atoi(strings.TrimSpace(tmp[0]))
		if err != nil {
			return 0, 0, err
		}
		v2, err := strconv.Atoi(strings.TrimSpace(tmp[1]))
		if err != nil {
			return 0, 0, err
		}
		if v1 > v2 {
			return 0, 0, fmt.Errorf("range %d~%d is reversed", v1, v2)
		}
		return v1, v2, nil
	}
	v, err := strconv.Atoi(args)
	return v, v, err
}

func (e *NumberExpr) Len() int { return len(e.entries) }

func (e *NumberExpr) Weight(i int) int { return e.entries[i].weight }

// Eval draws n values, each from a distinct element of the expression. n is
// capped at the number of elements, and n <= 0 draws nothing.
func (e *NumberExpr) Eval(r Intner, n int) []int {
	var picks []int
	if e.weighted {
		// ParseNumber rejects negative weights and a zero total.
		picks, _ = PickWeighted(r, e, n)
	} else {
		all := make([]int64, len(e.entries))
		for i := range all {
			all[i] = int64(i)
		}
		for _, i := range Sample(r, all, n) {
			picks = append(picks, int(i))
		}
	}
	out := make([]int, 0, len(picks))
	for _, i := range picks {
		entry := e.entries[i]
		// lo <= hi is checked by parseBounds
		v, _ := r.NextInt64(int64(entry.lo), int64(entry.hi))
		out = append(out, int(v))
	}
	return out
}

// Numbers evaluates several expressions joined by '#', one value from each.
func Numbers(r Intner, args string) ([]int, error) {
	strs := strings.Split(args, "#")
	ints := make([]int, 0, len(strs))
	for _, s := range strs {
		if len(s) == 0 {
			continue
		}
		e, err := ParseNumber(s)
		if err != nil {
			return nil, err
		}
		ints = append(ints, e.Eval(r, 1)...)
	}
	return ints, nil
}
