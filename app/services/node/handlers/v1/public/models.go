package public

// submitTx is what a wallet submits to store data on the weave. The wallet
// constructs the transaction client side; the engine accepts it as is.
type submitTx struct {
	ID        string `json:"id" validate:"required,len=64,hexadecimal"`
	Owner     string `json:"owner" validate:"required"`
	Target    string `json:"target" validate:"required"`
	Payload   []byte `json:"payload"`
	Reward    uint64 `json:"reward"`
	TimeStamp int64  `json:"timestamp"`
}

// tx is the response model for transactions.
type tx struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	Target      string `json:"target"`
	PayloadSize uint64 `json:"payload_size"`
	Reward      uint64 `json:"reward"`
	TimeStamp   int64  `json:"timestamp"`
}

// block is the response model for block queries.
type block struct {
	Hash            string `json:"hash"`
	PrevBlockHash   string `json:"prev_block_hash"`
	RecallBlockHash string `json:"recall_block_hash"`
	Height          uint64 `json:"height"`
	TimeStamp       int64  `json:"timestamp"`
	Miner           string `json:"miner"`
	Trans           []tx   `json:"trans"`
	TotalSize       uint64 `json:"total_size"`
	Nonce           string `json:"nonce"`
	Difficulty      uint   `json:"difficulty"`
}
