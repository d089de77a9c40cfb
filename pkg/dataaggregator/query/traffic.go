package query

type Traffic struct {
	From string
	To   string
}
