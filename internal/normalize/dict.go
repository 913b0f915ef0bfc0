package normalize

// BrandDictionary is the built-in brand table. Order matters: sub-brands and
// longer names come before the houses they contain so first-match-wins picks
// the specific entry. Keywords carry both Latin and katakana spellings since
// auction exports use either.
var BrandDictionary = Dictionary{
	{Canonical: "ルイヴィトン", Keywords: []string{"ルイヴィトン", "ルイ・ヴィトン", "ヴィトン", "louisvuitton", "vuitton"}},
	{Canonical: "シャネル", Keywords: []string{"シャネル", "chanel"}},
	{Canonical: "エルメス", Keywords: []string{"エルメス", "hermes", "hermès"}},
	{Canonical: "グッチ", Keywords: []string{"グッチ", "gucci"}},
	{Canonical: "プラダ", Keywords: []string{"プラダ", "prada"}},
	{Canonical: "ミュウミュウ", Keywords: []string{"ミュウミュウ", "miumiu"}},
	{Canonical: "セリーヌ", Keywords: []string{"セリーヌ", "celine", "céline"}},
	{Canonical: "ディオール", Keywords: []string{"ディオール", "クリスチャンディオール", "dior"}},
	{Canonical: "フェンディ", Keywords: []string{"フェンディ", "fendi"}},
	{Canonical: "ボッテガヴェネタ", Keywords: []string{"ボッテガ", "bottega"}},
	{Canonical: "サンローラン", Keywords: []string{"サンローラン", "イヴサンローラン", "saintlaurent", "ysl"}},
	{Canonical: "バレンシアガ", Keywords: []string{"バレンシアガ", "balenciaga"}},
	{Canonical: "ロエベ", Keywords: []string{"ロエベ", "loewe"}},
	{Canonical: "ゴヤール", Keywords: []string{"ゴヤール", "goyard"}},
	{Canonical: "ヴァレクストラ", Keywords: []string{"ヴァレクストラ", "valextra"}},
	{Canonical: "ジバンシィ", Keywords: []string{"ジバンシィ", "ジバンシー", "givenchy"}},
	{Canonical: "クロエ", Keywords: []string{"クロエ", "chloe", "chloé"}},
	{Canonical: "バーバリー", Keywords: []string{"バーバリー", "burberry"}},
	{Canonical: "コーチ", Keywords: []string{"コーチ", "coach"}},
	{Canonical: "ケイトスペード", Keywords: []string{"ケイトスペード", "katespade"}},
	{Canonical: "マイケルコース", Keywords: []string{"マイケルコース", "michaelkors"}},
	{Canonical: "トリーバーチ", Keywords: []string{"トリーバーチ", "toryburch"}},
	{Canonical: "フルラ", Keywords: []string{"フルラ", "furla"}},
	{Canonical: "トッズ", Keywords: []string{"トッズ", "tod's", "tods"}},
	{Canonical: "ブルガリ", Keywords: []string{"ブルガリ", "bvlgari", "bulgari"}},
	{Canonical: "カルティエ", Keywords: []string{"カルティエ", "cartier"}},
	{Canonical: "ティファニー", Keywords: []string{"ティファニー", "tiffany"}},
	{Canonical: "ヴァンクリーフ&アーペル", Keywords: []string{"ヴァンクリーフ", "vancleef"}},
	{Canonical: "ハリーウィンストン", Keywords: []string{"ハリーウィンストン", "harrywinston"}},
	{Canonical: "ショーメ", Keywords: []string{"ショーメ", "chaumet"}},
	{Canonical: "ブシュロン", Keywords: []string{"ブシュロン", "boucheron"}},
	{Canonical: "ポメラート", Keywords: []string{"ポメラート", "pomellato"}},
	{Canonical: "ミキモト", Keywords: []string{"ミキモト", "mikimoto"}},
	{Canonical: "タサキ", Keywords: []string{"タサキ", "tasaki", "田崎"}},
	{Canonical: "4℃", Keywords: []string{"4℃", "4°c", "ヨンドシー"}},
	{Canonical: "アガット", Keywords: []string{"アガット", "agete"}},
	{Canonical: "ete", Keywords: []string{"エテ", "ete"}},
	{Canonical: "ロレックス", Keywords: []string{"ロレックス", "rolex"}},
	{Canonical: "オメガ", Keywords: []string{"オメガ", "omega"}},
	{Canonical: "チューダー", Keywords: []string{"チューダー", "チュードル", "tudor"}},
	{Canonical: "パテックフィリップ", Keywords: []string{"パテック", "patek"}},
	{Canonical: "オーデマピゲ", Keywords: []string{"オーデマ", "audemars"}},
	{Canonical: "ヴァシュロンコンスタンタン", Keywords: []string{"ヴァシュロン", "vacheron"}},
	{Canonical: "IWC", Keywords: []string{"iwc", "インターナショナルウォッチ"}},
	{Canonical: "パネライ", Keywords: []string{"パネライ", "panerai"}},
	{Canonical: "ブライトリング", Keywords: []string{"ブライトリング", "breitling"}},
	{Canonical: "タグホイヤー", Keywords: []string{"タグホイヤー", "tagheuer"}},
	{Canonical: "ウブロ", Keywords: []string{"ウブロ", "hublot"}},
	{Canonical: "ゼニス", Keywords: []string{"ゼニス", "zenith"}},
	{Canonical: "ジャガールクルト", Keywords: []string{"ジャガールクルト", "jaeger", "lecoultre"}},
	{Canonical: "ロンジン", Keywords: []string{"ロンジン", "longines"}},
	{Canonical: "セイコー", Keywords: []string{"グランドセイコー", "セイコー", "seiko"}},
	{Canonical: "シチズン", Keywords: []string{"シチズン", "citizen"}},
	{Canonical: "カシオ", Keywords: []string{"カシオ", "casio", "g-shock", "gショック"}},
	{Canonical: "ハミルトン", Keywords: []string{"ハミルトン", "hamilton"}},
	{Canonical: "フランクミュラー", Keywords: []string{"フランクミュラー", "franckmuller"}},
	{Canonical: "モンクレール", Keywords: []string{"モンクレール", "moncler"}},
	{Canonical: "カナダグース", Keywords: []string{"カナダグース", "canadagoose"}},
	{Canonical: "タトラス", Keywords: []string{"タトラス", "tatras"}},
	{Canonical: "ノースフェイス", Keywords: []string{"ノースフェイス", "northface"}},
	{Canonical: "パタゴニア", Keywords: []string{"パタゴニア", "patagonia"}},
	{Canonical: "ストーンアイランド", Keywords: []string{"ストーンアイランド", "stoneisland"}},
	{Canonical: "シュプリーム", Keywords: []string{"シュプリーム", "supreme"}},
	{Canonical: "アークテリクス", Keywords: []string{"アークテリクス", "arc'teryx", "arcteryx"}},
	{Canonical: "サカイ", Keywords: []string{"sacai", "サカイ"}},
	{Canonical: "コムデギャルソン", Keywords: []string{"ギャルソン", "commedesgarcons"}},
	{Canonical: "イッセイミヤケ", Keywords: []string{"イッセイミヤケ", "isseymiyake", "プリーツプリーズ", "バオバオ"}},
	{Canonical: "ヨウジヤマモト", Keywords: []string{"ヨウジヤマモト", "yohjiyamamoto", "y-3"}},
	{Canonical: "メゾンマルジェラ", Keywords: []string{"マルジェラ", "margiela"}},
	{Canonical: "オフホワイト", Keywords: []string{"オフホワイト", "off-white", "offwhite"}},
	{Canonical: "ステューシー", Keywords: []string{"ステューシー", "stussy"}},
	{Canonical: "ナイキ", Keywords: []string{"ナイキ", "nike", "ジョーダン", "jordan"}},
	{Canonical: "アディダス", Keywords: []string{"アディダス", "adidas", "イージー", "yeezy"}},
	{Canonical: "ニューバランス", Keywords: []string{"ニューバランス", "newbalance"}},
	{Canonical: "コンバース", Keywords: []string{"コンバース", "converse"}},
	{Canonical: "ドクターマーチン", Keywords: []string{"マーチン", "dr.martens", "martens"}},
	{Canonical: "レッドウィング", Keywords: []string{"レッドウィング", "redwing"}},
	{Canonical: "クリスチャンルブタン", Keywords: []string{"ルブタン", "louboutin"}},
	{Canonical: "ジミーチュウ", Keywords: []string{"ジミーチュウ", "jimmychoo"}},
	{Canonical: "フェラガモ", Keywords: []string{"フェラガモ", "ferragamo"}},
	{Canonical: "チャーチ", Keywords: []string{"church's", "チャーチ"}},
	{Canonical: "オールデン", Keywords: []string{"オールデン", "alden"}},
	{Canonical: "ジョンロブ", Keywords: []string{"ジョンロブ", "johnlobb"}},
	{Canonical: "モラビト", Keywords: []string{"モラビト", "morabito"}},
	{Canonical: "ダンヒル", Keywords: []string{"ダンヒル", "dunhill"}},
	{Canonical: "ポールスミス", Keywords: []string{"ポールスミス", "paulsmith"}},
	{Canonical: "ラルフローレン", Keywords: []string{"ラルフローレン", "ralphlauren", "ポロラルフ"}},
	{Canonical: "アルマーニ", Keywords: []string{"アルマーニ", "armani"}},
	{Canonical: "ヴェルサーチ", Keywords: []string{"ヴェルサーチ", "versace"}},
	{Canonical: "ドルチェ&ガッバーナ", Keywords: []string{"ドルガバ", "ドルチェ", "dolce"}},
	{Canonical: "モンブラン", Keywords: []string{"モンブラン", "montblanc"}},
	{Canonical: "パーカー", Keywords: []string{"parker万年筆", "パーカー万年筆"}},
	{Canonical: "ペリカン", Keywords: []string{"ペリカン万年筆", "pelikan"}},
	{Canonical: "レイバン", Keywords: []string{"レイバン", "ray-ban", "rayban"}},
	{Canonical: "オークリー", Keywords: []string{"オークリー", "oakley"}},
}

// CategoryDictionary buckets names into the six ledger categories. 衣類 sits
// after the accessory words because jacket listings often mention strap or
// charm attachments.
var CategoryDictionary = Dictionary{
	{Canonical: "バッグ", Keywords: []string{
		"バッグ", "バック", "トート", "ショルダー", "ハンドバ", "リュック", "ボストン",
		"クラッチ", "ポーチ", "ポシェット", "セカンドバ", "ビジネスバ", "bag", "backpack",
	}},
	{Canonical: "財布", Keywords: []string{
		"財布", "ウォレット", "wallet", "長財布", "二つ折り", "三つ折り", "コインケース",
		"カードケース", "マネークリップ", "キーケース",
	}},
	{Canonical: "時計", Keywords: []string{
		"時計", "腕時計", "watch", "クロノグラフ", "デイトジャスト", "サブマリーナ",
		"スピードマスター", "オートマチック", "クォーツ",
	}},
	{Canonical: "アクセサリー", Keywords: []string{
		"ネックレス", "リング", "指輪", "ブレスレット", "ピアス", "イヤリング", "ペンダント",
		"バングル", "ブローチ", "チャーム", "アクセサリー", "necklace", "ring", "bracelet",
	}},
	{Canonical: "靴", Keywords: []string{
		"スニーカー", "ブーツ", "パンプス", "ローファー", "サンダル", "シューズ", "革靴",
		"ヒール", "ミュール", "sneaker", "boots", "shoes",
	}},
	{Canonical: "衣類", Keywords: []string{
		"ジャケット", "コート", "ダウン", "パーカー", "ニット", "セーター", "シャツ",
		"tシャツ", "ワンピース", "スカート", "パンツ", "デニム", "ブルゾン", "マフラー",
		"ストール", "スカーフ", "ベルト", "帽子", "キャップ", "手袋",
	}},
}
