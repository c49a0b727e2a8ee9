package itinerary

// CollateralType is the asset format of a collateral.
type CollateralType string

const (
	CollateralPDF   CollateralType = "pdf"
	CollateralDOCX  CollateralType = "docx"
	CollateralVideo CollateralType = "video"
	CollateralImage CollateralType = "image"
	CollateralPPTX  CollateralType = "pptx"
)

func (ct CollateralType) String() string {
	return string(ct)
}

func (ct CollateralType) IsValid() bool {
	switch ct {
	case CollateralPDF, CollateralDOCX, CollateralVideo, CollateralImage, CollateralPPTX:
		return true
	default:
		return false
	}
}
