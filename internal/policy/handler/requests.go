package handler

// SetDepositoryRequest is the PUT /admin/depository payload.
type SetDepositoryRequest struct {
	Identity string `json:"identity"`
}

// SetCustodianRequest is the PUT /admin/custodians/{identity} payload.
type SetCustodianRequest struct {
	IsBank bool `json:"is_bank"`
}

// DepositoryResponse confirms the registered depository.
type DepositoryResponse struct {
	Depository string `json:"depository"`
}

// CustodianResponse reports an identity's custodian-bank flag.
type CustodianResponse struct {
	Identity string `json:"identity"`
	IsBank   bool   `json:"is_bank"`
}
