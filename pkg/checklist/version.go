package checklist

// Version はライブラリのバージョンです
const Version = "1.0.0"

// CompliantEventNumber は対応している最新の列構成のイベント番号です
const CompliantEventNumber = webCatalogEventNumber
