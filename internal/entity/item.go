package entity

// Item identifies a single asset within its originating collection contract.
type Item struct {
	Contract string
	TokenId  uint64
}
