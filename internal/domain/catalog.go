package domain

type AutoAnswer struct {
	ID          string `json:"id"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

type ServicePrice struct {
	ID      string `json:"id"`
	Service string `json:"service"`
	Price   string `json:"price"`
	Note    string `json:"note"`
}

type ServiceInfo struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	WhenItNeeds string `json:"whenItNeeds"`
	Frequency   string `json:"frequency"`
	Methods     string `json:"methods"`
	Stages      string `json:"stages"`
	Duration    string `json:"duration"`
}

type CatalogEntry struct {
	ServiceInfo
	Price          string `json:"price"`
	Note           string `json:"note"`
	Recommendation string `json:"recommendation"`
}
