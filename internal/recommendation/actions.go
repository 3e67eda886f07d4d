package recommendation

// Action texts. Stored reports embed these strings, so edits change the
// wording of newly generated reports only.
const (
	ActionApplyLime   = "Soil pH is acidic: apply agricultural lime to raise pH"
	ActionApplySulfur = "Soil pH is alkaline: apply elemental sulfur or organic matter to lower pH"
	ActionNitrogen    = "Nitrogen is low: apply nitrogen fertilizer"
	ActionPhosphorus  = "Phosphorus is low: apply phosphorus fertilizer"
	ActionPotassium   = "Potassium is low: apply potassium fertilizer"

	ActionInvestigateCrop = "Vegetation index is critically low: inspect fields for pests, disease or nutrient deficiency"
	ActionMonitorCrop     = "Vegetation index is below target: increase monitoring and consider fertilization"

	ActionHeatStress       = "Frequent heat waves: apply heat stress mitigation such as shading and extra irrigation"
	ActionDrainage         = "Frequent heavy rain: improve field drainage"
	ActionPlanIrrigation   = "Temperatures are rising: plan for increased irrigation"
	ActionDroughtVarieties = "Low precipitation: consider drought-resistant crop varieties"
	ActionProtectCrops     = "Weather is harming crops: take protective measures"

	ActionUpgradeIrrigation  = "Irrigation efficiency is critical: upgrade irrigation systems urgently"
	ActionIrrigationSchedule = "Irrigation efficiency is below target: improve irrigation scheduling"
	ActionSmartIrrigation    = "Consider smart irrigation with soil moisture sensors"

	ActionCollectData       = "Yield confidence is low: collect more crop monitoring data"
	ActionOptimizePractices = "Yield is below potential: optimize agronomic practices"

	ActionReviewCosts  = "Profit margin is low: review the cost structure"
	ActionInputPricing = "Cost per hectare is high: negotiate input pricing"
	ActionExpansion    = "Profit is trending up: consider expanding cultivated area"
)
