package app

// Client-facing messages. The dashboard matches on some of these verbatim.
const (
	msgIdeaMissingFields = "Chýbajú povinné údaje!"
	msgIdeaSaveFailed    = "Chyba pri ukladaní!"
	msgIdeaFetchFailed   = "Chyba pri získavaní dát!"
	msgIdeaNotFound      = "Nápad nenájdený!"

	msgPromptMissingFields  = "Missing required fields: name, language, type, content."
	msgPromptCreateFailed   = "Failed to create prompt"
	msgPromptsFetchFailed   = "Failed to fetch prompts"
	msgPromptFetchFailed    = "Failed to fetch prompt"
	msgPromptNotFound       = "Prompt not found"
	msgPromptLikeFailed     = "Failed to add like"
	msgPromptDislikeFailed  = "Failed to add dislike"
	msgWizardMissingFields  = "idea_id and prompt_id are required"
	msgWizardSaveFailed     = "Failed to save wizard"
	msgWizardsFetchFailed   = "Failed to fetch wizards"
	msgWizardFetchFailed    = "Failed to fetch wizard"
	msgWizardNotFound       = "Wizard not found"
	msgVideoMissingFields   = "wizard_id, title, and status are required."
	msgVideoCreateFailed    = "Failed to add video record."
	msgVideosFetchFailed    = "Failed to fetch videos"
	msgWizardVideosFailed   = "Failed to fetch videos."
	msgWizardVideosNotFound = "No videos found for this wizard."

	msgWeatherMissingWizard   = "Missing wizard_id"
	msgIdeaOrPromptNotFound   = "Idea or Prompt not found"
	msgWeatherInvalidJSON     = "GPT response is not valid JSON"
	msgWeatherGenerateFailed  = "Failed to generate weather query: "
	msgWeatherFetchFailed     = "Failed to fetch weather query."
	msgWeatherQueryNotFound   = "No weather query found for this wizard."
	msgSimulatedNoFiles       = "No weather data files found in the directory."
	msgSimulatedFailed        = "Failed to process simulated weather data."
	msgSceneMissingFields     = "wizard_id, weather_query, and weather_data are required."
	msgSceneParseFailed       = "Failed to parse GPT response. Check the format of the response."
	msgSceneGenerateFailed    = "Failed to generate scenes."
	msgScenesFetchFailed      = "Failed to fetch scenes."
	msgScenesNotFound         = "No scenes found for this wizard."
	msgRenderMissingFields    = "wizard_id and type are required."
	msgRenderEnqueueFailed    = "Failed to add render job."
	msgRenderPendingFailed    = "Failed to fetch pending render job."
	msgRenderNoPending        = "No pending render jobs."
	msgRenderJobFetchFailed   = "Failed to fetch render job."
	msgRenderJobNotFound      = "Render job not found."
	msgRenderJobSettled       = "Render job has already finished."
	msgCreateVideoMissing     = "wizard_id and render_job_id are required."
	msgRenderingFailed        = "Rendering failed."
	msgRenderVideoFailed      = "Failed to render video."
	msgTablesFetchFailed      = "Failed to fetch tables"
)
