package reporting

// User-facing reply texts. Kept in one place so a deployment can
// translate them without touching the machine.
const (
	msgReportStarted    = "好的，請您依照以下步驟上報失物：\n1. 請先傳送失物的『圖片』。"
	msgAskDescription   = "圖片已接收！請輸入您撿到失物的詳細描述 (例如：物品名稱、顏色、品牌、特徵等)。"
	msgAskLocation      = "好的，請您提供撿到失物的『位置』(可直接傳送 Line 的位置訊息，或輸入文字描述)。"
	msgReportComplete   = "感謝您上報失物！我們已將資訊發佈。"
	msgReportCancelled  = "已取消失物上報。"
	msgFlowError        = "上報流程錯誤，請重新開始上報。"
	msgImageRequired    = "請先傳送失物的『圖片』，或輸入取消指令結束上報。"
	msgImageUnsupported = "目前不支援圖片上傳，請先開始上報流程。"
	msgLocationUnusable = "目前不支援位置訊息，請先開始上報流程。"
	msgImageFailed      = "圖片處理失敗，請再試一次。"
	msgProcessingFailed = "處理失敗，請稍後再試。"
	msgAIFallback       = "很抱歉，AI 服務目前無法回應，請稍後再試。"
)
