package structs

import "time"

type History interface {
	Record(r SortRecord) (*SortRecord, error)
	List(limit int) (SortRecords, error)
}

func NewSortRecord(res *SortResult, source string) SortRecord {
	return SortRecord{
		Target:  res.Target,
		Spec:    res.Spec,
		Count:   len(res.Links),
		Source:  source,
		Created: time.Now().UTC(),
	}
}
