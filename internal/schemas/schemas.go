package schemas

// jobDescriptionSchema describes a job description record as returned by the
// service. Only fields the client depends on are constrained; the service may
// add fields freely.
const jobDescriptionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "JobDescription",
  "type": "object",
  "required": ["id", "jobCode", "status", "version"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "jobCode": {"type": "string", "minLength": 1},
    "status": {"type": "string", "enum": ["draft", "approved", "rejected", "archived"]},
    "version": {"type": "integer", "minimum": 1},
    "aiGenerated": {"type": "boolean"},
    "mainPurpose": {"type": "string"},
    "jobInformation": {
      "type": "object",
      "properties": {
        "posisi": {"type": "string"},
        "divisi": {"type": "string"},
        "departemen": {"type": "string"}
      }
    },
    "jobDescriptions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["no", "description"],
        "properties": {
          "no": {"type": "integer", "minimum": 1},
          "description": {"type": "string"}
        }
      }
    },
    "relationships": {
      "type": "object",
      "properties": {
        "internal": {"type": "array", "items": {"type": "string"}},
        "external": {"type": "array", "items": {"type": "string"}}
      }
    },
    "versions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["version", "changedBy"],
        "properties": {
          "version": {"type": "integer", "minimum": 1},
          "changedBy": {"type": "string"},
          "changeDescription": {"type": "string"}
        }
      }
    }
  }
}`

// bulkImportResultSchema describes the results object of a bulk import
// response. Both lists are required even when empty so that the partition
// check never has to guess.
const bulkImportResultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "BulkImportResult",
  "type": "object",
  "required": ["success", "failed"],
  "properties": {
    "success": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["filename", "jobCode", "posisi"],
        "properties": {
          "filename": {"type": "string", "minLength": 1},
          "jobCode": {"type": "string", "minLength": 1},
          "posisi": {"type": "string"}
        }
      }
    },
    "failed": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["filename", "error"],
        "properties": {
          "filename": {"type": "string", "minLength": 1},
          "error": {"type": "string"}
        }
      }
    }
  }
}`
